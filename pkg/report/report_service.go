package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"go.uber.org/zap"

	"restaurant-inventory/domain"
	"restaurant-inventory/internal/utils/logger"
)

// Report slugs and the wire names of the views they read.
const (
	TotalStock      = "total-stock"
	IngredientsUsed = "ingredients-used"
	Remaining       = "remaining"

	ViewTotalStock      = "View_TotalStockByIngredient"
	ViewIngredientsUsed = "View_TotalIngredientsUsed"
	ViewRemaining       = "View_RemainingIngredients"
)

var headers = map[string][]string{
	TotalStock:      {"IngredientsID", "IngredientName", "UnitOfMeasurement", "TotalStock"},
	IngredientsUsed: {"IngredientsID", "IngredientName", "TotalUsed"},
	Remaining:       {"IngredientsID", "IngredientName", "UnitOfMeasurement", "TotalStock", "TotalUsed", "RemainingStock"},
}

// Slugs lists the reports in display order.
func Slugs() []string {
	return []string{TotalStock, IngredientsUsed, Remaining}
}

// SlugForView resolves a View_* wire name.
func SlugForView(view string) (string, bool) {
	switch view {
	case ViewTotalStock:
		return TotalStock, true
	case ViewIngredientsUsed:
		return IngredientsUsed, true
	case ViewRemaining:
		return Remaining, true
	}
	return "", false
}

type (
	// Uploader stores a finished report and returns where it can be fetched.
	Uploader interface {
		Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
	}

	// Mailer delivers a report as an attachment.
	Mailer interface {
		SendAttachment(to, subject, body, filename string, data []byte) error
	}

	ReportService interface {
		Rows(ctx context.Context, slug string) (any, error)
		CSV(ctx context.Context, slug string) ([]byte, error)
		Publish(ctx context.Context, slug string) (domain.PublishReportResponse, error)
		Mail(ctx context.Context, slug string, to string) error
	}

	csvRecord interface {
		CSVRecord() []string
	}

	reportService struct {
		reportRepository ReportRepository
		uploader         Uploader
		mailer           Mailer
		now              func() time.Time
	}
)

// NewReportService accepts nil sinks; publishing or mailing then fails with
// domain.ErrReportSinkDisabled.
func NewReportService(reportRepository ReportRepository, uploader Uploader, mailer Mailer) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		uploader:         uploader,
		mailer:           mailer,
		now:              time.Now,
	}
}

func unknown(slug string) error {
	return domain.NewFailure(domain.KindNotFound, slug, domain.ErrUnknownReport)
}

func (s *reportService) Rows(ctx context.Context, slug string) (any, error) {
	var (
		rows any
		err  error
	)
	switch slug {
	case TotalStock:
		rows, err = s.reportRepository.TotalStock(ctx)
	case IngredientsUsed:
		rows, err = s.reportRepository.IngredientsUsed(ctx)
	case Remaining:
		rows, err = s.reportRepository.Remaining(ctx)
	default:
		return nil, unknown(slug)
	}
	if err != nil {
		return nil, wrap(slug, err)
	}
	return rows, nil
}

func (s *reportService) CSV(ctx context.Context, slug string) ([]byte, error) {
	rows, err := s.Rows(ctx, slug)
	if err != nil {
		return nil, err
	}

	var records []csvRecord
	switch typed := rows.(type) {
	case []domain.TotalStockRow:
		records = toRecords(typed)
	case []domain.IngredientUsageRow:
		records = toRecords(typed)
	case []domain.RemainingStockRow:
		records = toRecords(typed)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers[slug]); err != nil {
		return nil, wrap(slug, err)
	}
	for _, r := range records {
		if err := w.Write(r.CSVRecord()); err != nil {
			return nil, wrap(slug, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, wrap(slug, err)
	}
	return buf.Bytes(), nil
}

func (s *reportService) Publish(ctx context.Context, slug string) (domain.PublishReportResponse, error) {
	if s.uploader == nil {
		return domain.PublishReportResponse{}, domain.NewFailure(domain.KindInvalidInput, slug, domain.ErrReportSinkDisabled)
	}
	data, err := s.CSV(ctx, slug)
	if err != nil {
		return domain.PublishReportResponse{}, err
	}

	key := fmt.Sprintf("reports/%s/%s.csv", slug, s.now().UTC().Format("20060102T150405Z"))
	location, err := s.uploader.Upload(ctx, key, data, "text/csv")
	if err != nil {
		return domain.PublishReportResponse{}, wrap(slug, fmt.Errorf("upload report: %w", err))
	}

	logger.FromContext(ctx).Info("report published", zap.String("report", slug), zap.String("location", location))
	return domain.PublishReportResponse{Location: location}, nil
}

func (s *reportService) Mail(ctx context.Context, slug string, to string) error {
	if s.mailer == nil {
		return domain.NewFailure(domain.KindInvalidInput, slug, domain.ErrReportSinkDisabled)
	}
	if to == "" {
		return domain.NewFailure(domain.KindInvalidInput, slug, domain.ErrReportRecipientNone)
	}
	data, err := s.CSV(ctx, slug)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Inventory report: %s", slug)
	body := fmt.Sprintf("<p>The %s report generated at %s is attached.</p>",
		slug, s.now().UTC().Format(time.RFC1123))
	if err := s.mailer.SendAttachment(to, subject, body, slug+".csv", data); err != nil {
		return wrap(slug, fmt.Errorf("send report: %w", err))
	}

	logger.FromContext(ctx).Info("report mailed", zap.String("report", slug))
	return nil
}

func toRecords[T csvRecord](rows []T) []csvRecord {
	out := make([]csvRecord, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

func wrap(slug string, err error) error {
	f := domain.AsFailure(err)
	if f.Resource == "" {
		f.Resource = slug
	}
	return f
}
