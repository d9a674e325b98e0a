package client

import (
	"bytes"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Stats struct {
	Size     int `json:"size"`
	Capacity int `json:"capacity"`
}

// Vector is a remote vector of string items served by vectord.
type Vector interface {
	Push(value string) (int, error)
	Insert(pos int, value string) (int, error)
	Get(index int) (string, error)
	Erase(pos int) error
	Pop() error
	List() ([]string, error)
	Stats() (Stats, error)
}

type Client struct {
	host   string
	client fasthttp.Client
}

func NewClient(host string) Vector {
	return &Client{
		host: host,
	}
}

func (o *Client) Push(value string) (int, error) {
	body, err := o.do(fasthttp.MethodPost, "/items", []byte(value))
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(string(body))
}

func (o *Client) Insert(pos int, value string) (int, error) {
	body, err := o.do(fasthttp.MethodPut, itemPath(pos), []byte(value))
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(string(body))
}

func (o *Client) Get(index int) (string, error) {
	body, err := o.do(fasthttp.MethodGet, itemPath(index))

	return string(body), err
}

func (o *Client) Erase(pos int) error {
	_, err := o.do(fasthttp.MethodDelete, itemPath(pos))

	return err
}

func (o *Client) Pop() error {
	_, err := o.do(fasthttp.MethodDelete, "/items")

	return err
}

func (o *Client) List() ([]string, error) {
	body, err := o.do(fasthttp.MethodGet, "/items")
	if err != nil {
		return nil, err
	}

	var items []string

	err = json.Unmarshal(body, &items)

	return items, err
}

func (o *Client) Stats() (Stats, error) {
	var stats Stats

	body, err := o.do(fasthttp.MethodGet, "/stats")
	if err != nil {
		return stats, err
	}

	err = json.Unmarshal(body, &stats)

	return stats, err
}

func itemPath(index int) string {
	return "/items/" + strconv.Itoa(index)
}

func (o *Client) do(method string, path string, body ...[]byte) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	req.Header.SetRequestURI(o.host + path)
	req.Header.SetMethod(method)

	if len(body) > 0 {
		req.SetBody(body[0])
	}

	req.Header.Set("Accept-Encoding", "gzip")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	err := o.client.Do(req, resp)
	if err != nil {
		return nil, err
	}

	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		switch code {
		case fasthttp.StatusNotFound:
			return nil, ErrNotFound
		case fasthttp.StatusRequestedRangeNotSatisfiable:
			return nil, ErrOutOfRange
		case fasthttp.StatusInsufficientStorage:
			return nil, ErrOutOfLimit
		}

		return nil, ErrUnexpectedStatus
	}

	var respBody []byte

	if bytes.EqualFold(resp.Header.Peek("Content-Encoding"), []byte("gzip")) {
		respBody, err = resp.BodyGunzip()
		if err != nil {
			return nil, err
		}
	} else {
		respBody = append(respBody, resp.Body()...)
	}

	return respBody, nil
}
