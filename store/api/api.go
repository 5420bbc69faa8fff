// Package api is a client for the remote study-metadata api.
package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	nt "studydash/entity"
	"studydash/query"
)

const (
	defaultTimeout = 30 * time.Second
	maxBody        = 32 << 20
)

// Config specifies the api location.
type Config struct {
	Base    string        `yaml:"base"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Client fetches schema, listing pages and chart series.
type Client struct {
	base   string
	client *http.Client
	logger nt.Logger
}

// New creates a Client.
func (cfg *Config) New(lgr nt.Logger) *Client {

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		base:   strings.TrimRight(cfg.Base, "/"),
		client: &http.Client{Timeout: timeout},
		logger: lgr,
	}
}

// Name returns the base url of the api.
func (clt *Client) Name() string {
	return clt.base
}

// Schema fetches a single record and describes its fields in document order.
// Total is the unfiltered record count.
func (clt *Client) Schema(ctx context.Context) (fields []nt.Field, total int, err error) {

	body, err := clt.get(ctx, query.NewRequest(1).URL(clt.base))
	if err != nil {
		return
	}

	result := gjson.ParseBytes(body)
	first := result.Get("items.0")
	if !first.IsObject() {
		err = errors.Errorf("no records to discover fields from")
		return
	}

	first.ForEach(func(key, val gjson.Result) bool {
		fields = append(fields, nt.Field{
			Name: key.String(),
			Type: kind(val),
		})
		return true
	})

	total = int(result.Get("total").Int())
	return
}

// GetPage fetches the page of records described by req.
// Values in each line follow the order of fields.
func (clt *Client) GetPage(ctx context.Context, fields []nt.Field, req query.Request) (listing nt.Listing, err error) {

	body, err := clt.get(ctx, req.URL(clt.base))
	if err != nil {
		return
	}

	result := gjson.ParseBytes(body)
	listing.Total = int(result.Get("total").Int())

	for _, item := range result.Get("items").Array() {
		byName := decodeObject(item)

		line := make(nt.Line, len(fields))
		for i, field := range fields {
			line[i] = byName[field.Name]
		}
		listing.Lines = append(listing.Lines, line)
	}

	return
}

// Series fetches chart rows from path, relative to the base url.
func (clt *Client) Series(ctx context.Context, path string) (rows []nt.Row, err error) {

	body, err := clt.get(ctx, clt.base+"/"+strings.TrimLeft(path, "/"))
	if err != nil {
		return
	}

	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		err = errors.Errorf("expected array of rows from %s", path)
		return
	}

	for _, item := range result.Array() {
		rows = append(rows, nt.Row(decodeObject(item)))
	}
	return
}

// unexported

func (clt *Client) get(ctx context.Context, url string) (body []byte, err error) {

	clt.logger.Info(ctx, "requesting", "url", url)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = errors.Wrapf(err, "failed to create request for %s", url)
		return
	}
	request.Header.Set("Accept", "application/json")

	response, err := clt.client.Do(request)
	if err != nil {
		err = errors.Wrapf(err, "failed to get %s", url)
		return
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		err = errors.Errorf("HTTP error! status: %d", response.StatusCode)
		return
	}

	body, err = io.ReadAll(io.LimitReader(response.Body, maxBody))
	if err != nil {
		err = errors.Wrapf(err, "failed to read response from %s", url)
		return
	}

	if !gjson.ValidBytes(body) {
		err = errors.Errorf("invalid json in response from %s", url)
	}
	return
}

func decodeObject(item gjson.Result) map[string]nt.Value {

	byName := map[string]nt.Value{}
	item.ForEach(func(key, val gjson.Result) bool {
		byName[key.String()] = nt.Value{Raw: val.Value()}
		return true
	})

	return byName
}

func kind(val gjson.Result) string {
	switch val.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "bool"
	case gjson.Null:
		return "null"
	}

	if val.IsArray() {
		return "array"
	}
	return "object"
}
