package airtable

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	at "github.com/mehanizm/airtable"
	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/models"
)

const service = "airtable"

// ErrRecordNotFound is returned by Find, Update and Delete when the store
// answers 404 for the record id.
var ErrRecordNotFound = errors.New("record not found")

// Client wraps the Airtable REST client for one base.
type Client struct {
	api    *at.Client
	baseID string
	logger *zap.Logger
}

// Record is one row of a table.
type Record struct {
	ID          string
	CreatedTime string
	Fields      Fields
}

type Sort struct {
	Field     string
	Direction string // "asc" or "desc"
}

// Query selects records from a table. An empty Formula lists everything.
type Query struct {
	Formula string
	Sort    []Sort
}

func NewClient(baseURL, token, baseID string, logger *zap.Logger) *Client {
	logger = logger.Named("airtable")

	api := at.NewClient(token)
	if baseURL != "" {
		if err := api.SetBaseURL(baseURL); err != nil {
			logger.Warn("invalid airtable base url, using default", zap.String("url", baseURL), zap.Error(err))
		}
	}
	return &Client{api: api, baseID: baseID, logger: logger}
}

// List returns every record matching q, following pagination offsets.
func (c *Client) List(ctx context.Context, table string, q Query) ([]Record, error) {
	sorts := make([]struct {
		FieldName string
		Direction string
	}, 0, len(q.Sort))
	for _, s := range q.Sort {
		sorts = append(sorts, struct {
			FieldName string
			Direction string
		}{FieldName: s.Field, Direction: s.Direction})
	}

	var (
		records []Record
		offset  string
	)
	for {
		req := c.table(table).GetRecords()
		if q.Formula != "" {
			req = req.WithFilterFormula(q.Formula)
		}
		if len(sorts) > 0 {
			req = req.WithSort(sorts...)
		}
		if offset != "" {
			req = req.WithOffset(offset)
		}

		page, err := req.DoContext(ctx)
		if err != nil {
			return nil, upstream(err, false)
		}
		for _, rec := range page.Records {
			records = append(records, fromAPI(rec))
		}

		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}

	c.logger.Debug("listed records",
		zap.String("table", table),
		zap.String("formula", q.Formula),
		zap.Int("count", len(records)),
	)
	return records, nil
}

// Find fetches one record by id.
func (c *Client) Find(ctx context.Context, table, id string) (*Record, error) {
	rec, err := c.table(table).GetRecordContext(ctx, id)
	if err != nil {
		return nil, upstream(err, true)
	}
	out := fromAPI(rec)
	return &out, nil
}

func (c *Client) Create(ctx context.Context, table string, fields Fields) (*Record, error) {
	created, err := c.table(table).AddRecordsContext(ctx, &at.Records{
		Records: []*at.Record{{Fields: fields}},
	})
	if err != nil {
		return nil, upstream(err, false)
	}
	rec, err := single(created)
	if err != nil {
		return nil, err
	}
	c.logger.Info("created record", zap.String("table", table), zap.String("id", rec.ID))
	return rec, nil
}

// Update sends a partial update. Fields absent from the map are untouched
// and nil values clear the cell.
func (c *Client) Update(ctx context.Context, table, id string, fields Fields) (*Record, error) {
	updated, err := c.table(table).UpdateRecordsPartialContext(ctx, &at.Records{
		Records: []*at.Record{{ID: id, Fields: fields}},
	})
	if err != nil {
		return nil, upstream(err, true)
	}
	rec, err := single(updated)
	if err != nil {
		return nil, err
	}
	c.logger.Info("updated record",
		zap.String("table", table),
		zap.String("id", id),
		zap.Strings("fields", fields.Names()),
	)
	return rec, nil
}

func (c *Client) Delete(ctx context.Context, table, id string) error {
	if _, err := c.table(table).DeleteRecordsContext(ctx, []string{id}); err != nil {
		return upstream(err, true)
	}
	c.logger.Info("deleted record", zap.String("table", table), zap.String("id", id))
	return nil
}

func (c *Client) table(name string) *at.Table {
	return c.api.GetTable(c.baseID, name)
}

func fromAPI(rec *at.Record) Record {
	if rec == nil {
		return Record{Fields: Fields{}}
	}
	fields := Fields(rec.Fields)
	if fields == nil {
		fields = Fields{}
	}
	return Record{ID: rec.ID, CreatedTime: rec.CreatedTime, Fields: fields}
}

// single unwraps a one-record write response.
func single(recs *at.Records) (*Record, error) {
	if recs == nil || len(recs.Records) == 0 {
		return nil, &models.UpstreamError{Service: service, Err: errors.New("empty write response")}
	}
	rec := fromAPI(recs.Records[0])
	return &rec, nil
}

// upstream classifies a client error. On a record path a 404 is
// ErrRecordNotFound; any other status becomes an UpstreamError whose details
// keep the response payload.
func upstream(err error, recordPath bool) error {
	var httpErr *at.HTTPClientError
	if errors.As(err, &httpErr) {
		if recordPath && httpErr.StatusCode == http.StatusNotFound {
			return ErrRecordNotFound
		}
		details := err.Error()
		if httpErr.Err != nil {
			details = httpErr.Err.Error()
		}
		return &models.UpstreamError{Service: service, Status: httpErr.StatusCode, Details: details}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &models.UpstreamError{Service: service, Err: fmt.Errorf("request failed: %w", err)}
}
