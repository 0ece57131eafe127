package fiberlog

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagURL      = "url"
	TagIP       = "ip"
	TagUA       = "ua"
	TagBody     = "body"
	TagResBody  = "res_body"
	TagQuery    = "query"
	RequestID   = "request_id"

	defaultMaxBodySize = 2048
)

// FuncTag extracts a log field value for a request.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	maxBodySize := cfg.maxBodySize()
	all := map[string]FuncTag{
		TagPid:     func(_ *fiber.Ctx, d *data) interface{} { return d.pid },
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} { return d.end.Sub(d.start).String() },
		TagStatus:  func(c *fiber.Ctx, _ *data) interface{} { return c.Response().StatusCode() },
		TagMethod:  func(c *fiber.Ctx, _ *data) interface{} { return c.Method() },
		TagPath:    func(c *fiber.Ctx, _ *data) interface{} { return c.Path() },
		TagURL:     func(c *fiber.Ctx, _ *data) interface{} { return c.OriginalURL() },
		TagIP:      func(c *fiber.Ctx, _ *data) interface{} { return c.IP() },
		TagUA:      func(c *fiber.Ctx, _ *data) interface{} { return c.Get(fiber.HeaderUserAgent) },
		TagQuery:   func(c *fiber.Ctx, _ *data) interface{} { return string(c.Request().URI().QueryString()) },
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
				return ""
			}
			return truncate(c.Body(), maxBodySize)
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			if !strings.HasPrefix(string(c.Response().Header.ContentType()), fiber.MIMEApplicationJSON) {
				return ""
			}
			return truncate(c.Response().Body(), maxBodySize)
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} { return c.GetRespHeader(fiber.HeaderXRequestID) },
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}

func truncate(body []byte, maxBodySize int) string {
	if len(body) > maxBodySize {
		return string(body[:maxBodySize]) + "..."
	}
	return string(body)
}
