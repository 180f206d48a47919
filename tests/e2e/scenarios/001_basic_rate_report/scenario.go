package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
var baseTime = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

type scanSpec struct {
	templateID  string
	target      string
	startOffset int // seconds after baseTime; -1 means no start event
	endOffset   int // seconds after baseTime; -1 means no end event
	maxRequests int64
}

var scanSpecs = []scanSpec{
	{templateID: "cve-2021-0001", target: "https://a.example.com", startOffset: 0, endOffset: 10, maxRequests: 100},
	{templateID: "cve-2021-0002", target: "https://b.example.com", startOffset: 5, endOffset: 15, maxRequests: 50},
	// Dangling start: must be excluded from completed-scan statistics.
	{templateID: "cve-2021-0003", target: "https://c.example.com", startOffset: 8, endOffset: -1, maxRequests: 999},
}

// ### End - fixed configs

type rawEvent struct {
	Time         string `json:"time"`
	EventType    string `json:"event_type"`
	TemplateID   string `json:"template_id"`
	Target       string `json:"target"`
	TemplatePath string `json:"template_path"`
	MaxRequests  int64  `json:"max_requests"`
}

// main runs the e2e scenario: 001_basic_rate_report
//
// This scenario tests the end-to-end flow of event log parsing, scan
// grouping, and report rendering through the serve mode.
//
// What it tests:
//   - JSONL event parsing and scan grouping by (template_id, target)
//   - Completed-scan filtering (a dangling scan_start is excluded)
//   - Global min/max time span and mean requests/second calculation
//   - Duration statistics (average, shortest, longest)
//   - Plain-text report rendering via GET /report
//   - Liveness via GET /healthz
//
// Expected results:
//   - 5 events, 3 unique scans, 2 completed scans
//   - 150 total requests over a 15.00s span, mean 10.000 reqs/sec
//   - Both completed scans last 10.00s
//
// Run steps:
//  1. Run this script once to generate .tmp/e2e/events.jsonl
//  2. Start the server: go run ./cmd/scanstats -serve .tmp/e2e/events.jsonl
//  3. Run this script again to assert against the live server
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the report server

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	eventsPath := filepath.Join(projectRoot, ".tmp", "e2e", "events.jsonl")
	if err := writeEventsFile(eventsPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to write events file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s\n", eventsPath)

	if !serverUp(baseURL) {
		fmt.Printf("Server not reachable at %s - start it with:\n", baseURL)
		fmt.Printf("  go run ./cmd/scanstats -serve %s\n", filepath.Join(".tmp", "e2e", "events.jsonl"))
		fmt.Println("then re-run this scenario to assert the report.")
		return
	}

	got, err := fetchReport(baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	// The server echoes the path it was started with, which the run steps
	// above pass as a project-relative path.
	want := expectedReport(filepath.Join(".tmp", "e2e", "events.jsonl"))
	if got != want {
		fmt.Println("FAIL: report mismatch")
		fmt.Println("--- want ---")
		fmt.Print(want)
		fmt.Println("--- got ---")
		fmt.Print(got)
		os.Exit(1)
	}

	fmt.Println("PASS: report matches expected output")
}

// findProjectRoot walks up from the working directory until go.mod is found.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("could not find go.mod; run from inside the project")
}

func writeEventsFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var b strings.Builder
	for _, spec := range scanSpecs {
		if spec.startOffset >= 0 {
			if err := appendEvent(&b, spec, "scan_start", spec.startOffset); err != nil {
				return err
			}
		}
		if spec.endOffset >= 0 {
			if err := appendEvent(&b, spec, "scan_end", spec.endOffset); err != nil {
				return err
			}
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

func appendEvent(b *strings.Builder, spec scanSpec, eventType string, offset int) error {
	event := rawEvent{
		Time:         baseTime.Add(time.Duration(offset) * time.Second).Format(time.RFC3339),
		EventType:    eventType,
		TemplateID:   spec.templateID,
		Target:       spec.target,
		TemplatePath: "cves/" + spec.templateID + ".yaml",
		MaxRequests:  spec.maxRequests,
	}
	jsonData, err := json.Marshal(event)
	if err != nil {
		return err
	}
	b.Write(jsonData)
	b.WriteByte('\n')
	return nil
}

func serverUp(baseURL string) bool {
	resp, err := http.Get(baseURL + "/healthz")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func fetchReport(baseURL string) (string, error) {
	resp, err := http.Get(baseURL + "/report")
	if err != nil {
		return "", fmt.Errorf("GET /report failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read report body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET /report returned %d: %s", resp.StatusCode, body)
	}
	return string(body), nil
}

// expectedReport renders the report the fixed scanSpecs must produce:
// 5 events, 3 unique scans, 2 completed; 150 requests over the 15s global
// span (0s min start to 15s max end); both completed scans last 10s.
func expectedReport(eventsPath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyzing scan events from: %s\n", eventsPath)
	b.WriteString(strings.Repeat("-", 50) + "\n")
	b.WriteString("Total events processed: 5\n")
	b.WriteString("Unique scans identified: 3\n")
	b.WriteString("Completed scans: 2\n")
	b.WriteString("\nResults:\n")
	b.WriteString("Total requests: 150\n")
	b.WriteString("Time span: 15.00 seconds\n")
	b.WriteString("Mean requests per second: 10.000\n")
	b.WriteString("\nAdditional Statistics:\n")
	b.WriteString("Average scan duration: 10.00 seconds\n")
	b.WriteString("Shortest scan: 10.00 seconds\n")
	b.WriteString("Longest scan: 10.00 seconds\n")
	return b.String()
}
