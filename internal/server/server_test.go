package server

import (
	"testing"

	"github.com/7phs/simplevector/internal/storages"
	"github.com/7phs/simplevector/vector"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

func newRequest(method, uri string, body ...byte) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)

	if len(body) > 0 {
		ctx.Request.SetBody(body)
	}

	return ctx
}

func serve(m *mockStorages, ctx *fasthttp.RequestCtx) {
	srv := NewServer(zap.NewNop(), &mockConfig{}, m).(*DefaultServer)
	srv.Handler()(ctx)
}

func TestServer_list(t *testing.T) {
	m := &mockStorages{}
	m.On("List").Return([][]byte{[]byte("a"), []byte("b")})
	m.On("Digest").Return(uint64(0xff))

	ctx := newRequest(fasthttp.MethodGet, "/items")
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `["a","b"]`, string(ctx.Response.Body()))
	assert.Equal(t, "ff", string(ctx.Response.Header.Peek("ETag")))

	m.AssertExpectations(t)
}

func TestServer_push(t *testing.T) {
	body := []byte("value")

	m := &mockStorages{}
	m.On("Push", body).Return(3, nil)

	ctx := newRequest(fasthttp.MethodPost, "/items", body...)
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "3", string(ctx.Response.Body()))

	m.AssertExpectations(t)
}

func TestServer_pushOutOfLimit(t *testing.T) {
	body := []byte("value")

	m := &mockStorages{}
	m.On("Push", body).Return(0, errors.Wrap(storages.ErrOutOfLimit, "limit"))

	ctx := newRequest(fasthttp.MethodPost, "/items", body...)
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusInsufficientStorage, ctx.Response.StatusCode())

	m.AssertExpectations(t)
}

func TestServer_pop(t *testing.T) {
	m := &mockStorages{}
	m.On("Pop").Return()

	ctx := newRequest(fasthttp.MethodDelete, "/items")
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	m.AssertExpectations(t)
}

func TestServer_get(t *testing.T) {
	m := &mockStorages{}
	m.On("Get", 1).Return([]byte("value"), nil)
	m.On("Get", 5).Return(nil, errors.Wrap(vector.ErrIndexOutOfRange, "index 5"))

	ctx := newRequest(fasthttp.MethodGet, "/items/1")
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "value", string(ctx.Response.Body()))

	ctx = newRequest(fasthttp.MethodGet, "/items/5")
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	m.AssertExpectations(t)
}

func TestServer_badIndex(t *testing.T) {
	m := &mockStorages{}

	ctx := newRequest(fasthttp.MethodGet, "/items/first")
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	m.AssertExpectations(t)
}

func TestServer_insert(t *testing.T) {
	body := []byte("42")

	m := &mockStorages{}
	m.On("Insert", 2, body).Return(2, nil)
	m.On("Insert", 9, body).Return(0, errors.Wrap(vector.ErrPositionOutOfRange, "insert at 9"))

	ctx := newRequest(fasthttp.MethodPut, "/items/2", body...)
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "2", string(ctx.Response.Body()))

	ctx = newRequest(fasthttp.MethodPut, "/items/9", body...)
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusRequestedRangeNotSatisfiable, ctx.Response.StatusCode())

	m.AssertExpectations(t)
}

func TestServer_erase(t *testing.T) {
	m := &mockStorages{}
	m.On("Erase", 0).Return(nil)
	m.On("Erase", 7).Return(errors.Wrap(vector.ErrPositionOutOfRange, "erase at 7"))

	ctx := newRequest(fasthttp.MethodDelete, "/items/0")
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	ctx = newRequest(fasthttp.MethodDelete, "/items/7")
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusRequestedRangeNotSatisfiable, ctx.Response.StatusCode())

	m.AssertExpectations(t)
}

func TestServer_stats(t *testing.T) {
	m := &mockStorages{}
	m.On("Stats").Return(storages.Stats{Size: 3, Capacity: 4})

	ctx := newRequest(fasthttp.MethodGet, "/stats")
	serve(m, ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"size":3,"capacity":4}`, string(ctx.Response.Body()))

	m.AssertExpectations(t)
}

func TestServer_unsupported(t *testing.T) {
	testSuites := []struct {
		method string
		uri    string
		status int
	}{
		{method: fasthttp.MethodPatch, uri: "/items", status: fasthttp.StatusMethodNotAllowed},
		{method: fasthttp.MethodPost, uri: "/items/1", status: fasthttp.StatusMethodNotAllowed},
		{method: fasthttp.MethodPost, uri: "/stats", status: fasthttp.StatusMethodNotAllowed},
		{method: fasthttp.MethodGet, uri: "/unknown", status: fasthttp.StatusNotFound},
	}

	for _, testSuite := range testSuites {
		m := &mockStorages{}

		ctx := newRequest(testSuite.method, testSuite.uri)
		serve(m, ctx)

		assert.Equal(t, testSuite.status, ctx.Response.StatusCode(), testSuite.method+" "+testSuite.uri)

		m.AssertExpectations(t)
	}
}
