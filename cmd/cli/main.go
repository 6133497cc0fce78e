package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

func main() {
	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}
	key := os.Getenv("ADMIN_API_KEY")

	if len(os.Args) > 1 && os.Args[1] == "run" {
		triggerRun(api, key)
		return
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter a URL to keep warm (e.g., https://example.com): ")
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		fmt.Println("Invalid URL.")
		return
	}

	body, _ := json.Marshal(map[string]string{"url": raw})
	req, _ := http.NewRequest(http.MethodPost, api+"/api/targets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Error contacting API:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		fmt.Println("Added! It will be pinged on the next run (or trigger one with: cli run).")
	} else {
		fmt.Println("API returned status:", resp.Status)
	}
}

func triggerRun(api, key string) {
	req, _ := http.NewRequest(http.MethodPost, api+"/api/run", nil)
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Error contacting API:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fmt.Println("API returned status:", resp.Status)
		return
	}
	var out struct {
		Ran   bool `json:"ran"`
		Entry *struct {
			Timestamp string `json:"timestamp"`
			Results   []struct {
				URL      string `json:"url"`
				OK       bool   `json:"ok"`
				Attempts int    `json:"attempts"`
				Error    string `json:"error"`
			} `json:"results"`
		} `json:"entry"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		fmt.Println("Bad response:", err)
		return
	}
	if !out.Ran {
		fmt.Println("No targets configured; nothing to do.")
		return
	}
	fmt.Println("Run at", out.Entry.Timestamp)
	for _, r := range out.Entry.Results {
		if r.OK {
			fmt.Printf("  ✔ %s (attempts: %d)\n", r.URL, r.Attempts)
		} else {
			fmt.Printf("  ✖ %s (attempts: %d, %s)\n", r.URL, r.Attempts, r.Error)
		}
	}
}
