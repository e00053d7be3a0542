// Command proxy_verify checks that the gateway relays upstream responses
// unchanged. For every route in its targets file it requests the gateway and
// the upstream API directly and compares status and body. Useful after any
// change to the relay path.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"
)

type route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	// Strict routes fail the run on any mismatch; the rest only report.
	Strict bool `json:"strict"`
}

type routesFile struct {
	Routes []route `json:"routes"`
}

type result struct {
	Route           route
	GatewayStatus   int
	UpstreamStatus  int
	StatusMatch     bool
	BodyMatch       bool
	Err             error
	GatewayElapsed  time.Duration
	UpstreamElapsed time.Duration
}

func main() {
	var (
		gatewayBase  string
		upstreamBase string
		routesPath   string
		bearer       string
		timeout      time.Duration
	)

	flag.StringVar(&gatewayBase, "gateway", "http://localhost:3000", "gateway base URL")
	flag.StringVar(&upstreamBase, "upstream", "http://localhost:5000", "upstream API base URL")
	flag.StringVar(&routesPath, "routes", filepath.Join("scripts", "proxy_verify", "routes.json"), "path to JSON routes file")
	flag.StringVar(&bearer, "token", "", "bearer token sent to the upstream on direct requests")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	routes, err := loadRoutes(routesPath)
	if err != nil {
		log.Fatalf("failed to load routes: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	var (
		results  []result
		failures int
		diffs    int
	)

	for _, rt := range routes {
		res := verifyRoute(client, gatewayBase, upstreamBase, bearer, rt)
		if res.Err != nil || !res.StatusMatch || !res.BodyMatch {
			if rt.Strict {
				failures++
			} else {
				diffs++
			}
		}
		results = append(results, res)
	}

	printReport(results)

	fmt.Printf("Strict failures: %d, Informational diffs: %d\n", failures, diffs)
	if failures > 0 {
		os.Exit(1)
	}
}

func loadRoutes(path string) ([]route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f routesFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Routes) == 0 {
		return nil, fmt.Errorf("no routes defined in %s", path)
	}
	return f.Routes, nil
}

func verifyRoute(client *http.Client, gatewayBase, upstreamBase, bearer string, rt route) result {
	res := result{Route: rt}

	gwResp, gwDur, gwErr := perform(client, gatewayBase, rt, "")
	upResp, upDur, upErr := perform(client, upstreamBase, rt, bearer)
	res.GatewayElapsed = gwDur
	res.UpstreamElapsed = upDur

	if gwErr != nil {
		res.Err = fmt.Errorf("gateway request failed: %w", gwErr)
		return res
	}
	if upErr != nil {
		res.Err = fmt.Errorf("upstream request failed: %w", upErr)
		return res
	}

	defer gwResp.Body.Close()
	defer upResp.Body.Close()

	res.GatewayStatus = gwResp.StatusCode
	res.UpstreamStatus = upResp.StatusCode
	res.StatusMatch = res.GatewayStatus == res.UpstreamStatus

	gwBody, err := io.ReadAll(gwResp.Body)
	if err != nil {
		res.Err = fmt.Errorf("read gateway body: %w", err)
		return res
	}
	upBody, err := io.ReadAll(upResp.Body)
	if err != nil {
		res.Err = fmt.Errorf("read upstream body: %w", err)
		return res
	}

	res.BodyMatch = bodiesEqual(gwBody, upBody)
	return res
}

func perform(client *http.Client, base string, rt route, bearer string) (*http.Response, time.Duration, error) {
	method := strings.ToUpper(strings.TrimSpace(rt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := rt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return nil, 0, err
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	return resp, time.Since(start), nil
}

func bodiesEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj)
}

func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k, v2 := range val {
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	case float64:
		if val == float64(int64(val)) {
			*v = int64(val)
		}
	}
}

func printReport(results []result) {
	fmt.Println("Proxy Relay Report")
	fmt.Println("==================")
	for _, res := range results {
		status := "OK"
		if res.Err != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Route.Method, res.Route.Path)
		fmt.Printf("  Gateway: %d (%s)\n", res.GatewayStatus, res.GatewayElapsed)
		fmt.Printf("  Upstream: %d (%s)\n", res.UpstreamStatus, res.UpstreamElapsed)
		if res.Err != nil {
			fmt.Printf("  Error: %v\n", res.Err)
		} else {
			fmt.Printf("  Status match: %t | Body match: %t | Strict: %t\n", res.StatusMatch, res.BodyMatch, res.Route.Strict)
		}
	}
}
