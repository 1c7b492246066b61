// Command smoke exercises a running server over HTTP and exits non-zero when
// a search or posting behaves unexpectedly.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fadilmartias/skill-connect/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"github.com/tidwall/gjson"
)

type check struct {
	name  string
	path  string
	query map[string]string
	count int64
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}
	baseURL := config.LoadAppConfig().BaseURL

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	checks := []check{
		{"workers in Varanasi", "/api/workers", map[string]string{"district": "Varanasi"}, 1},
		{"open jobs", "/api/jobs", map[string]string{"status": "Open"}, 3},
		{"carpenter search", "/api/jobs", map[string]string{"q": "CARPENTER"}, 1},
		{"unknown skill", "/api/workers", map[string]string{"skill": "Nonexistent"}, 0},
	}

	failed := 0
	for _, c := range checks {
		if err := runCheck(client, c); err != nil {
			log.Printf("FAIL %s: %v", c.name, err)
			failed++
			continue
		}
		log.Printf("ok   %s", c.name)
	}

	if err := checkPostListedFirst(client); err != nil {
		log.Printf("FAIL post job: %v", err)
		failed++
	} else {
		log.Printf("ok   post job")
	}

	if failed > 0 {
		log.Printf("%d check(s) failed against %s", failed, baseURL)
		os.Exit(1)
	}
}

func runCheck(client *resty.Client, c check) error {
	resp, err := client.R().SetQueryParams(c.query).Get(c.path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("status %d", resp.StatusCode())
	}
	if got := gjson.Get(resp.String(), "meta.count").Int(); got != c.count {
		return fmt.Errorf("expected %d results, got %d", c.count, got)
	}
	return nil
}

func checkPostListedFirst(client *resty.Client) error {
	resp, err := client.R().
		SetBody(map[string]interface{}{
			"title":          "Smoke Test Plumber",
			"description":    "Fix the handpump near the panchayat office.",
			"required_skill": "Plumbing",
			"location":       "Kanpur",
			"contact_info":   "smoke@example.org",
		}).
		Post("/api/jobs")
	if err != nil {
		return err
	}
	if resp.StatusCode() != 201 {
		return fmt.Errorf("status %d: %s", resp.StatusCode(), gjson.Get(resp.String(), "message").String())
	}
	id := gjson.Get(resp.String(), "data.id").String()

	resp, err = client.R().Get("/api/jobs")
	if err != nil {
		return err
	}
	if first := gjson.Get(resp.String(), "data.0.id").String(); first != id {
		return fmt.Errorf("expected %s listed first, got %s", id, first)
	}
	return nil
}
