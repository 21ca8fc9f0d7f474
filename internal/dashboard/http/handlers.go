// Package dashhttp serves the dashboard read endpoints and the sale export.
package dashhttp

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/salespulse/salespulse/internal/analytics"
	"github.com/salespulse/salespulse/internal/format"
	"github.com/salespulse/salespulse/internal/platform/httpx"
	"github.com/salespulse/salespulse/internal/sales"
	"github.com/salespulse/salespulse/internal/sales/export"
	"github.com/salespulse/salespulse/internal/targets"
)

const requestTimeout = 5 * time.Second

// KPIService resolves the current KPI snapshot.
type KPIService interface {
	Snapshot(ctx context.Context) (analytics.KPISnapshot, error)
}

// TargetReader supplies the target configuration for progress ratios.
type TargetReader interface {
	Get(ctx context.Context) (targets.Config, error)
}

// SaleLister supplies the raw sale collection for export.
type SaleLister interface {
	ListSales(ctx context.Context) ([]sales.Sale, error)
}

// Overview is the dashboard payload: the KPI snapshot, the configured
// targets, target-vs-actual progress, and the revenue figures pre-rendered
// in the workspace currency.
type Overview struct {
	KPIs     analytics.KPISnapshot `json:"kpis"`
	Targets  targets.Config        `json:"targets"`
	Progress Progress              `json:"progress"`
	Display  Display               `json:"display"`
}

// Display carries locale-formatted revenue strings so clients render the
// workspace currency consistently.
type Display struct {
	TotalRevenue string `json:"totalRevenue"`
	TodayRevenue string `json:"todayRevenue"`
	MonthRevenue string `json:"monthRevenue"`
}

// Progress holds the target-vs-actual ratios the presentation layer renders.
// A zero target reads as zero progress rather than a division error.
type Progress struct {
	MonthlyRevenue float64 `json:"monthlyRevenue"`
}

// Handler coordinates HTTP requests for the sales dashboard.
type Handler struct {
	logger   *slog.Logger
	kpis     KPIService
	targets  TargetReader
	sales    SaleLister
	loc      *time.Location
	currency string
	csvPool  sync.Pool
}

// NewHandler constructs the dashboard HTTP handler. currency is the
// workspace display currency code.
func NewHandler(logger *slog.Logger, kpis KPIService, targetReader TargetReader, saleLister SaleLister, loc *time.Location, currency string) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	if currency == "" {
		currency = format.DefaultCurrency
	}
	h := &Handler{
		logger:   logger,
		kpis:     kpis,
		targets:  targetReader,
		sales:    saleLister,
		loc:      loc,
		currency: currency,
	}
	h.csvPool.New = func() interface{} { return new(bytes.Buffer) }
	return h
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var (
		snap analytics.KPISnapshot
		cfg  targets.Config
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = h.kpis.Snapshot(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cfg, err = h.targets.Get(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.logger.Error("load dashboard", slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	overview := Overview{
		KPIs:    snap,
		Targets: cfg,
		Display: Display{
			TotalRevenue: format.Currency(snap.TotalRevenue, h.currency),
			TodayRevenue: format.Currency(snap.TodayRevenue, h.currency),
			MonthRevenue: format.Currency(snap.MonthRevenue, h.currency),
		},
	}
	if cfg.MonthlyRevenue > 0 {
		overview.Progress.MonthlyRevenue = snap.MonthRevenue / cfg.MonthlyRevenue
	}
	httpx.OK(w, overview)
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	list, err := h.sales.ListSales(ctx)
	if err != nil {
		h.logger.Error("load sales for export", slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, "Failed to export sales")
		return
	}

	buf := h.csvPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		buf.Reset()
		h.csvPool.Put(buf)
	}()

	if err := export.WriteSalesCSV(buf, list, h.loc); err != nil {
		h.logger.Error("write sales csv", slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, "Failed to export sales")
		return
	}

	filename := sanitizeFilename(r.URL.Query().Get("filename"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("stream csv", slog.Any("error", err))
	}
}

// sanitizeFilename keeps the artifact name usable in a Content-Disposition
// header and guarantees a .csv suffix.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return export.DefaultFilename
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", "\"", "_", "\n", "_", "\r", "_")
	name = replacer.Replace(name)
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		name += ".csv"
	}
	return name
}
