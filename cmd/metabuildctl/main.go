// Metabuildctl is the operational companion CLI: submit runs, watch them
// to completion, and cancel them against a running metabuild server.
//
// Exit codes for `run wait`: 0 succeeded, 1 failed, 2 cancelled,
// 3 budget-exceeded, 4 awaiting-approval.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/forgeworks/metabuild/ent"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/pkg/models"
)

const (
	exitSucceeded        = 0
	exitFailed           = 1
	exitCancelled        = 2
	exitBudgetExceeded   = 3
	exitAwaitingApproval = 4
)

func main() {
	addr := flag.String("addr", getEnv("METABUILD_ADDR", "http://localhost:8080"), "metabuild server address")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 || args[0] != "run" {
		usage()
		os.Exit(1)
	}

	cli := &client{base: strings.TrimRight(*addr, "/"), http: &http.Client{Timeout: 30 * time.Second}}

	var err error
	switch args[1] {
	case "submit":
		err = cli.submit(args[2:])
	case "wait":
		if len(args) != 3 {
			usage()
			os.Exit(1)
		}
		code, waitErr := cli.wait(args[2])
		if waitErr != nil {
			err = waitErr
			break
		}
		os.Exit(code)
	case "cancel":
		if len(args) != 3 {
			usage()
			os.Exit(1)
		}
		err = cli.cancel(args[2])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  metabuildctl run submit [-source-file path | -source text] [flags]
  metabuildctl run wait <run-id>
  metabuildctl run cancel <run-id>`)
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

type client struct {
	base string
	http *http.Client
}

func (c *client) submit(args []string) error {
	fs := flag.NewFlagSet("run submit", flag.ExitOnError)
	source := fs.String("source", "", "product spec text")
	sourceFile := fs.String("source-file", "", "path to product spec file")
	tenant := fs.String("tenant", "", "tenant (server default when empty)")
	sla := fs.String("sla", "", "SLA class: fast, normal, thorough")
	maxIters := fs.Int("max-iters", 0, "iteration cap (server default when 0)")
	costLimit := fs.Float64("cost-limit", 0, "cost ceiling in USD (server default when 0)")
	review := fs.Bool("review", false, "hold delivery for human review")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text := *source
	if *sourceFile != "" {
		data, err := os.ReadFile(*sourceFile)
		if err != nil {
			return fmt.Errorf("reading source file: %w", err)
		}
		text = string(data)
	}
	if text == "" {
		return fmt.Errorf("one of -source or -source-file is required")
	}

	req := models.CreateRunRequest{
		Tenant:         *tenant,
		Source:         text,
		SLAClass:       *sla,
		MaxIters:       *maxIters,
		CostLimitUSD:   *costLimit,
		ReviewRequired: *review,
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	resp, err := c.http.Post(c.base+"/api/v1/runs", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return httpError(resp)
	}

	var created ent.Run
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return err
	}
	fmt.Println(created.ID)
	return nil
}

// wait polls the run until it settles: terminal, or parked on a human
// approval gate.
func (c *client) wait(runID string) (int, error) {
	for {
		r, err := c.getRun(runID)
		if err != nil {
			return exitFailed, err
		}

		switch r.State {
		case run.StateSucceeded:
			fmt.Println("succeeded")
			return exitSucceeded, nil
		case run.StateFailed:
			reason := ""
			if r.TerminalReason != nil {
				reason = *r.TerminalReason
			}
			fmt.Println("failed:", reason)
			if strings.Contains(reason, "budget") {
				return exitBudgetExceeded, nil
			}
			return exitFailed, nil
		case run.StateCancelled:
			fmt.Println("cancelled")
			return exitCancelled, nil
		case run.StatePausedAwaitingApproval:
			fmt.Println("awaiting approval")
			return exitAwaitingApproval, nil
		}

		time.Sleep(2 * time.Second)
	}
}

func (c *client) cancel(runID string) error {
	resp, err := c.http.Post(c.base+"/api/v1/runs/"+runID+"/cancel", "application/json", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return httpError(resp)
	}
	fmt.Println("cancelled")
	return nil
}

func (c *client) getRun(runID string) (*ent.Run, error) {
	resp, err := c.http.Get(c.base + "/api/v1/runs/" + runID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, httpError(resp)
	}

	var detail models.RunDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, err
	}
	if detail.Run == nil {
		return nil, fmt.Errorf("run %s: empty response", runID)
	}
	return detail.Run, nil
}

func httpError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		return fmt.Errorf("%s: %s", resp.Status, payload.Error)
	}
	return fmt.Errorf("%s", resp.Status)
}
