package tokensource

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Load returns the raw token dictionary JSON from a local file path or an
// http(s) URL. The text is validated downstream by the analyzer; this
// package only fetches bytes.
func Load(source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read token dictionary: %w", err)
	}
	return string(data), nil
}

// fetch retrieves the token dictionary from a remote design-token service.
func fetch(url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch token dictionary: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch token dictionary: %d - %s", resp.StatusCode, string(body))
	}

	return string(body), nil
}
