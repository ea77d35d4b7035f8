package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"web3admin/frontend/shared/table"
	"web3admin/infrastructure/apiclient"
	"web3admin/models"
)

// LoadSummary fetches every source concurrently. Any failure fails the whole
// summary, matching an all-or-nothing batch.
func LoadSummary(ctx context.Context, api API, superadmin bool) (Summary, error) {
	active := make([]source, 0, len(sources))
	for _, s := range sources {
		if s.superOnly && !superadmin {
			continue
		}
		active = append(active, s)
	}

	results := make([]apiclient.Collection, len(active))
	var health string

	g, gctx := errgroup.WithContext(ctx)
	query := url.Values{"limit": {"5"}}
	for i, s := range active {
		g.Go(func() error {
			var col apiclient.Collection
			var err error
			if s.admin {
				col, err = api.ListAdmin(gctx, s.res, query)
			} else {
				col, err = api.ListPublic(gctx, s.res, query)
			}
			if err != nil {
				return fmt.Errorf("load %s: %w", s.slug, err)
			}
			results[i] = col
			return nil
		})
	}
	g.Go(func() error {
		status, err := api.Health(gctx)
		if err != nil {
			return fmt.Errorf("health: %w", err)
		}
		health = status
		return nil
	})
	if err := g.Wait(); err != nil {
		return Summary{APIStatus: StatusError}, err
	}

	summary := Summary{APIStatus: StatusError}
	if health == "OK" {
		summary.APIStatus = StatusConnected
	}
	var recent []RecentItem
	for i, s := range active {
		summary.Counts = append(summary.Counts, Count{Label: s.label, Href: "/dashboard/" + s.slug, Value: results[i].Total})
		recent = append(recent, recentItems(s, results[i].Items)...)
	}
	summary.Recent = newest(recent, recentLimit)
	return summary, nil
}

func recentItems(s source, items []models.Record) []RecentItem {
	if len(items) > s.take {
		items = items[:s.take]
	}
	out := make([]RecentItem, 0, len(items))
	for _, rec := range items {
		date, ok := firstTime(rec, s.dateKeys)
		if !ok {
			continue
		}
		out = append(out, RecentItem{ID: rec.ID(), Title: firstString(rec, s.titleKeys), Kind: s.kind, Date: date})
	}
	return out
}

// newest sorts by date, newest first, and keeps n.
func newest(items []RecentItem, n int) []RecentItem {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	if len(items) > n {
		items = items[:n]
	}
	return items
}

func firstString(rec models.Record, keys []string) string {
	for _, k := range keys {
		if s := rec.String(k); s != "" {
			return s
		}
	}
	return ""
}

func firstTime(rec models.Record, keys []string) (t time.Time, ok bool) {
	for _, k := range keys {
		if s := rec.String(k); s != "" {
			return table.ParseTime(s)
		}
	}
	return t, false
}

// loadAudit logs read errors and returns what it has.
func loadAudit(ctx context.Context, reader AuditReader) []models.AuditLog {
	if reader == nil {
		return nil
	}
	rows, err := reader.Recent(ctx, auditLimit)
	if err != nil {
		slog.Error("load audit entries failed", slog.Any("err", err))
		return nil
	}
	return rows
}
