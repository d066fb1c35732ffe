package adapters

import (
	"io"
	"net/http"
)

// doRequest sends req on client and returns the response status and full
// body. Transport errors come back as errors; non-success statuses do
// not, since each adapter classifies those against its own backend.
func doRequest(client *http.Client, req *http.Request) (int, []byte, error) {
	res, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, nil, err
	}

	return res.StatusCode, body, nil
}
