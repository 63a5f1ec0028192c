package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/domain/repository"
	"flightboard-service/pkg/logger"
	"flightboard-service/pkg/metrics"
	"flightboard-service/pkg/utils"
)

// ErrNoData marks a run that produced no usable document: the sheet came
// back without any rows at all, not even a header.
var ErrNoData = errors.New("sheet contains no rows")

// ReportBuilder drives one pipeline run: fetch the sheet, discard the
// header, parse every data row, aggregate daily air-time and assemble the
// dashboard payload. Each run builds fresh accumulators; nothing is shared
// between runs.
type ReportBuilder struct {
	sheetRepo    repository.SheetRepository
	snapshotRepo repository.SnapshotRepository
	parser       *utils.SheetParser
	metrics      *metrics.Metrics
	logger       logger.Logger
}

// NewReportBuilder creates a new report builder
func NewReportBuilder(
	sheetRepo repository.SheetRepository,
	snapshotRepo repository.SnapshotRepository,
	parser *utils.SheetParser,
	m *metrics.Metrics,
	log logger.Logger,
) *ReportBuilder {
	return &ReportBuilder{
		sheetRepo:    sheetRepo,
		snapshotRepo: snapshotRepo,
		parser:       parser,
		metrics:      m,
		logger:       log,
	}
}

// BuildReport runs the full pipeline once. Per-row failures silently
// reduce the collections and surface only through logs, diagnostics and
// metrics; only a transport failure or a rowless document is fatal. A
// header-only document is a success with three empty collections.
func (b *ReportBuilder) BuildReport(ctx context.Context) (*entity.Report, error) {
	started := time.Now()

	text, err := b.sheetRepo.FetchDocument(ctx)
	if err != nil {
		b.metrics.FetchFailures.Inc()
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	header := records[0]
	dataRows := records[1:]

	flights, billing, diagnostics := b.parser.ParseRows(header, dataRows)
	dailyAirtime := BuildDailyAirtime(flights)

	for _, diag := range diagnostics {
		b.metrics.RowsSkipped.WithLabelValues(diag.Derivation).Inc()
	}

	report := &entity.Report{
		Flights:      flights,
		Billing:      billing,
		DailyAirtime: dailyAirtime,
	}

	b.archiveRun(ctx, text, len(dataRows), report, diagnostics)

	b.metrics.ReportsBuilt.Inc()
	b.metrics.BuildTime.Observe(time.Since(started).Seconds())
	b.logger.Info("Report built",
		"rows", len(dataRows),
		"flights", len(flights),
		"billing", len(billing),
		"dailyAirtime", len(dailyAirtime),
		"diagnostics", len(diagnostics))

	return report, nil
}

// archiveRun stores the raw document and run counts for audit. Archive
// failures are logged, never fatal.
func (b *ReportBuilder) archiveRun(ctx context.Context, text string, rowCount int, report *entity.Report, diagnostics []entity.RowDiagnostic) {
	snapshot := &entity.RunSnapshot{
		FetchedAt:    time.Now().UTC(),
		Document:     text,
		RowCount:     rowCount,
		FlightCount:  len(report.Flights),
		BillingCount: len(report.Billing),
		Diagnostics:  diagnostics,
	}
	if err := b.snapshotRepo.Save(ctx, snapshot); err != nil {
		b.logger.Error("Failed to archive run snapshot", "error", err)
	}
}
