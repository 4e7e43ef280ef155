package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Seeds a running auction ledger server with the demonstration state and
// optionally submits one demo offer, exercising the /invoke dispatch
// surface end to end.

type invokeRequest struct {
	Operation string   `json:"operation"`
	Args      []string `json:"args,omitempty"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "auction ledger server base URL")
	withOffer := flag.Bool("offer", false, "submit a demo offer of 4000 from memberB after seeding")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	if err := invoke(client, *baseURL, invokeRequest{Operation: "initLedger"}); err != nil {
		fmt.Fprintf(os.Stderr, "seeding failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("ledger seeded: members A/B/C, vehicle 1234, listing ABCD")

	if *withOffer {
		req := invokeRequest{Operation: "makeOffer", Args: []string{"4000", "ABCD", "memberB@acme.org"}}
		if err := invoke(client, *baseURL, req); err != nil {
			fmt.Fprintf(os.Stderr, "demo offer failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("demo offer submitted: 4000 on ABCD by memberB@acme.org")
	}
}

func invoke(client *http.Client, baseURL string, req invokeRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	resp, err := client.Post(baseURL+"/invoke", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("call %s: %w", req.Operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s returned status %d: %s", req.Operation, resp.StatusCode, payload)
	}
	return nil
}
