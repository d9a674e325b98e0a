package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/7phs/simplevector/internal/config"
	"github.com/7phs/simplevector/internal/storages"
	"github.com/7phs/simplevector/vector"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	contentTypeJSON = "application/json"
)

var (
	itemsPath   = []byte("/items")
	itemsPrefix = []byte("/items/")
	statsPath   = []byte("/stats")

	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

type Server interface {
	Start() error
	Stop()
}

type DefaultServer struct {
	logger              *zap.Logger
	maintenance         GroupMaintenance
	port                int
	maintenanceInterval time.Duration
	server              fasthttp.Server

	cancelCtx context.Context
	cancel    func()

	storages storages.Storages
}

func NewServer(
	logger *zap.Logger,
	conf config.Config,
	storages storages.Storages,
) Server {
	cancelCtx, cancel := context.WithCancel(context.Background())

	srv := &DefaultServer{
		logger:              logger,
		storages:            storages,
		port:                conf.Port(),
		maintenanceInterval: conf.Maintenance(),

		cancelCtx: cancelCtx,
		cancel:    cancel,

		maintenance: NewGroupMaintenance(logger, storages),
	}
	srv.server.Handler = NewLoggerHandler(logger, srv.handler)

	return srv
}

// Handler returns the request handler wrapped with request logging.
func (o *DefaultServer) Handler() fasthttp.RequestHandler {
	return o.server.Handler
}

func (o *DefaultServer) handler(ctx *fasthttp.RequestCtx) {
	path := ctx.Path()

	switch {
	case bytes.Equal(path, itemsPath):
		o.handleItems(ctx)

	case bytes.HasPrefix(path, itemsPrefix):
		index, err := strconv.Atoi(string(path[len(itemsPrefix):]))
		if err != nil {
			ctx.Error("Bad index", fasthttp.StatusBadRequest)
			return
		}

		o.handleItem(ctx, index)

	case bytes.Equal(path, statsPath):
		if string(ctx.Method()) != http.MethodGet {
			ctx.Error("Unsupported method", fasthttp.StatusMethodNotAllowed)
			return
		}

		o.writeJSON(ctx, o.storages.Stats())

	default:
		ctx.Error("Not found", fasthttp.StatusNotFound)
	}
}

func (o *DefaultServer) handleItems(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Method()) {
	case http.MethodGet:
		list := o.storages.List()

		items := make([]string, 0, len(list))
		for _, body := range list {
			items = append(items, string(body))
		}

		ctx.Response.Header.Set("ETag", strconv.FormatUint(o.storages.Digest(), 16))

		o.writeJSON(ctx, items)

	case http.MethodPost:
		index, err := o.storages.Push(ctx.Request.Body())
		if err != nil {
			o.handlerError(ctx, err)
			return
		}

		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString(strconv.Itoa(index))

	case http.MethodDelete:
		o.storages.Pop()

		ctx.SetStatusCode(fasthttp.StatusOK)

	default:
		ctx.Error("Unsupported method", fasthttp.StatusMethodNotAllowed)
	}
}

func (o *DefaultServer) handleItem(ctx *fasthttp.RequestCtx, index int) {
	switch string(ctx.Method()) {
	case http.MethodGet:
		body, err := o.storages.Get(index)
		if err != nil {
			o.handlerError(ctx, err)
			return
		}

		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBody(body)

	case http.MethodPut:
		pos, err := o.storages.Insert(index, ctx.Request.Body())
		if err != nil {
			o.handlerError(ctx, err)
			return
		}

		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString(strconv.Itoa(pos))

	case http.MethodDelete:
		err := o.storages.Erase(index)
		if err != nil {
			o.handlerError(ctx, err)
			return
		}

		ctx.SetStatusCode(fasthttp.StatusOK)

	default:
		ctx.Error("Unsupported method", fasthttp.StatusMethodNotAllowed)
	}
}

func (o *DefaultServer) writeJSON(ctx *fasthttp.RequestCtx, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		o.handlerError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(body)
}

func (o *DefaultServer) handlerError(ctx *fasthttp.RequestCtx, err error) {
	switch errors.Cause(err) {
	case vector.ErrIndexOutOfRange:
		ctx.Error("Not found", fasthttp.StatusNotFound)
	case vector.ErrPositionOutOfRange:
		ctx.Error("Position out of range", fasthttp.StatusRequestedRangeNotSatisfiable)
	case storages.ErrOutOfLimit, vector.ErrAllocation:
		ctx.Error("Out of limit", fasthttp.StatusInsufficientStorage)
	default:
		o.logger.Error("failed to handle request",
			zap.ByteString("url", ctx.RequestURI()),
			zap.Error(err),
		)

		ctx.Error("Internal error", fasthttp.StatusInternalServerError)
	}
}

func (o *DefaultServer) Start() error {
	var wg errgroup.Group

	wg.Go(func() error {
		o.logger.Info("maintenance: start")

		o.maintenance.Start(o.cancelCtx, o.maintenanceInterval)
		return nil
	})

	wg.Go(func() error {
		port := fmt.Sprintf(":%d", o.port)

		o.logger.Info("http: listen",
			zap.String("port", port),
		)

		return o.server.ListenAndServe(port)
	})

	return wg.Wait()
}

func (o *DefaultServer) Stop() {
	var wg errgroup.Group

	wg.Go(func() error {
		o.logger.Info("http: shutdown")

		return o.server.Shutdown()
	})

	wg.Go(func() error {
		o.logger.Info("maintenance: shutdown")

		o.cancel()

		return nil
	})

	err := wg.Wait()
	if err != nil {
		o.logger.Error("failed to stop server",
			zap.Error(err),
		)
	}
}
