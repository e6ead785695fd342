package aws

import (
	"context"
	"crypto/tls"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/pkg/errors"

	"spotadvisor/pkg/models"
)

const fileScheme = "file://"

// Fetch loads the spot advisor dataset from source, which is an http(s) URL,
// a file:// URL or a local path. It performs exactly one read and no retries.
func Fetch(ctx context.Context, source string, timeout time.Duration) (*models.AdvisorData, error) {
	var (
		body []byte
		err  error
	)
	start := time.Now()
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = dataLoad(ctx, source, timeout)
	} else {
		body, err = os.ReadFile(strings.TrimPrefix(source, fileScheme))
	}
	if err != nil {
		return nil, &FetchError{Kind: ErrTransport, Source: source, Err: err}
	}
	hlog.CtxDebugf(ctx, "loaded %d bytes of advisor data from %s in %v", len(body), source, time.Since(start))

	data, err := decode(body)
	if err != nil {
		return nil, &FetchError{Kind: ErrMalformed, Source: source, Err: err}
	}
	return data, nil
}

func dataLoad(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	req, resp := protocol.AcquireRequest(), protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()
	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(url)
	hClient, err := client.NewClient(
		client.WithDialer(standard.NewDialer()),
		client.WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create http client")
	}

	if err = hClient.DoTimeout(ctx, req, resp, timeout); err != nil {
		return nil, errors.Wrapf(err, "GET %s", url)
	}
	if resp.StatusCode() != consts.StatusOK {
		return nil, errors.Errorf("GET %s: code %d", url, resp.StatusCode())
	}
	// resp is released on return
	return append([]byte(nil), resp.Body()...), nil
}

func decode(body []byte) (*models.AdvisorData, error) {
	var data models.AdvisorData
	if err := sonic.Unmarshal(body, &data); err != nil {
		return nil, errors.Wrap(err, "failed to parse advisor data")
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return &data, nil
}
