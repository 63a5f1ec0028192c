package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/pkg/logger"
)

// Column layout of the published sheet. Indices 6-9 are overloaded: the
// flight derivation reads the registration and linked flight numbers
// there, the billing derivation reads bill amounts, due date and payment
// status from the same cells.
const (
	colFlightNumber  = 0
	colDepartureCity = 1
	colArrivalCity   = 2
	colDepartureTime = 3
	colArrivalTime   = 4
	colTravelLinkage = 5
	colRegNo         = 6
	colArrFlightNo   = 7
	colDepFlightNo   = 8
	colArrDate       = 9
	colArrTimeGmt    = 10
	colDepDate       = 11
	colDepTimeGmt    = 12

	colTotalBill     = 6
	colAmountPaid    = 7
	colDueDate       = 8
	colPaymentStatus = 9

	billingMinCells = 10
)

// SheetParser derives flight and billing records from raw sheet rows
type SheetParser struct {
	logger logger.Logger
	now    func() time.Time
}

// NewSheetParser creates a new sheet parser
func NewSheetParser(log logger.Logger) *SheetParser {
	return NewSheetParserAt(log, time.Now)
}

// NewSheetParserAt is NewSheetParser with a fixed clock. The clock only
// feeds the overdue check on billing records.
func NewSheetParserAt(log logger.Logger, now func() time.Time) *SheetParser {
	return &SheetParser{
		logger: log,
		now:    now,
	}
}

// ParseRows runs both derivations over every data row. Failures are
// isolated per derivation and collected as diagnostics; a malformed
// billing side never costs the row its flight record, and no row aborts
// the batch.
func (p *SheetParser) ParseRows(header []string, rows [][]string) ([]entity.FlightRecord, []entity.BillingRecord, []entity.RowDiagnostic) {
	flights := make([]entity.FlightRecord, 0, len(rows))
	billing := make([]entity.BillingRecord, 0)
	diagnostics := make([]entity.RowDiagnostic, 0)

	for i, cells := range rows {
		row := PadRow(cells, len(header))
		rowNum := i + 1

		flight, flightDiags := p.deriveFlight(row)
		for _, diag := range flightDiags {
			diag.Row = rowNum
			diagnostics = append(diagnostics, diag)
			p.logger.Warn("Flight derivation degraded", "row", rowNum, "reason", diag.Reason)
		}
		flights = append(flights, flight)

		bill, billDiag := p.deriveBilling(row)
		if bill != nil {
			billing = append(billing, *bill)
		} else if billDiag != nil {
			billDiag.Row = rowNum
			diagnostics = append(diagnostics, *billDiag)
			p.logger.Warn("Billing derivation skipped", "row", rowNum, "reason", billDiag.Reason)
		}
	}

	return flights, billing, diagnostics
}

// deriveFlight extracts the flight view of a row. It always yields a
// record; a date/time pair that fails to convert leaves that instant
// absent and contributes a diagnostic.
func (p *SheetParser) deriveFlight(row Row) (entity.FlightRecord, []entity.RowDiagnostic) {
	var diagnostics []entity.RowDiagnostic

	travelLinkage := strings.TrimSpace(row.Cell(colTravelLinkage))
	isLinkageMissing := travelLinkage == "" || strings.EqualFold(travelLinkage, "n/a")

	var arrivalIst, departureIst *time.Time
	if arrDate, arrTime := row.Cell(colArrDate), row.Cell(colArrTimeGmt); arrDate != "" && arrTime != "" {
		if arrivalIst = GmtToIst(arrDate, arrTime); arrivalIst == nil {
			diagnostics = append(diagnostics, entity.RowDiagnostic{
				Derivation: entity.DerivationFlight,
				Reason:     fmt.Sprintf("cannot convert arrival date %q time %q", arrDate, arrTime),
			})
		}
	}
	if depDate, depTime := row.Cell(colDepDate), row.Cell(colDepTimeGmt); depDate != "" && depTime != "" {
		if departureIst = GmtToIst(depDate, depTime); departureIst == nil {
			diagnostics = append(diagnostics, entity.RowDiagnostic{
				Derivation: entity.DerivationFlight,
				Reason:     fmt.Sprintf("cannot convert departure date %q time %q", depDate, depTime),
			})
		}
	}

	// Departure minus arrival, sign preserved
	airHours := 0.0
	if arrivalIst != nil && departureIst != nil {
		airHours = departureIst.Sub(*arrivalIst).Hours()
	}

	record := entity.FlightRecord{
		FlightNumber:     row.Cell(colFlightNumber),
		DepartureCity:    row.Cell(colDepartureCity),
		ArrivalCity:      row.Cell(colArrivalCity),
		DepartureTime:    row.Cell(colDepartureTime),
		ArrivalTime:      row.Cell(colArrivalTime),
		TravelLinkage:    travelLinkage,
		IsLinkageMissing: isLinkageMissing,
		RegNo:            strings.TrimSpace(row.Cell(colRegNo)),
		ArrFlightNo:      row.Cell(colArrFlightNo),
		DepFlightNo:      row.Cell(colDepFlightNo),
		ArrivalIST:       toLocalTime(arrivalIst),
		DepartureIST:     toLocalTime(departureIst),
		AirHours:         airHours,
	}
	return record, diagnostics
}

// deriveBilling extracts the billing view of a row. Rows without the
// billing shape (too short, or blank amount cells) are simply not billing
// rows and skip silently; rows with unparseable amounts or due date skip
// with a diagnostic.
func (p *SheetParser) deriveBilling(row Row) (*entity.BillingRecord, *entity.RowDiagnostic) {
	if len(row) < billingMinCells {
		return nil, nil
	}

	billCell := strings.TrimSpace(row.Cell(colTotalBill))
	paidCell := strings.TrimSpace(row.Cell(colAmountPaid))
	if billCell == "" || paidCell == "" {
		return nil, nil
	}

	totalBill, err := strconv.ParseFloat(billCell, 64)
	if err != nil {
		return nil, &entity.RowDiagnostic{
			Derivation: entity.DerivationBilling,
			Reason:     fmt.Sprintf("invalid total bill %q", billCell),
		}
	}
	amountPaid, err := strconv.ParseFloat(paidCell, 64)
	if err != nil {
		return nil, &entity.RowDiagnostic{
			Derivation: entity.DerivationBilling,
			Reason:     fmt.Sprintf("invalid amount paid %q", paidCell),
		}
	}

	var dueDate *time.Time
	if dueDateStr := row.Cell(colDueDate); dueDateStr != "" {
		parsed, err := time.Parse(DueDateLayout, dueDateStr)
		if err != nil {
			return nil, &entity.RowDiagnostic{
				Derivation: entity.DerivationBilling,
				Reason:     fmt.Sprintf("invalid due date %q", dueDateStr),
			}
		}
		dueDate = &parsed
	}

	// Due dates parse as UTC midnight; compare in UTC so the overdue flip
	// does not depend on the host zone
	amountRemaining := totalBill - amountPaid
	isOverdue := dueDate != nil && p.now().UTC().After(*dueDate) && amountRemaining > 0

	record := &entity.BillingRecord{
		FlightNumber:     row.Cell(colFlightNumber),
		TotalBill:        totalBill,
		AmountPaid:       amountPaid,
		DueDate:          toLocalTime(dueDate),
		PaymentStatusRaw: row.Cell(colPaymentStatus),
		IsOverdue:        isOverdue,
		AmountRemaining:  amountRemaining,
	}
	return record, nil
}

func toLocalTime(t *time.Time) *entity.LocalTime {
	if t == nil {
		return nil
	}
	lt := entity.LocalTime(*t)
	return &lt
}
