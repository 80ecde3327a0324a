package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors        int
	WalletOrders       int
	GatewaySettlements int
	DuplicateWebhooks  int
	RejectedWebhooks   int
	CheckoutFailures   int
	CancelledStale     int
	ServerErrors       int
	PathHits           map[string]int
	ErrorPatterns      map[string]int
}

var requestLine = regexp.MustCompile(`Request: (\w+) (\S+) from \S+ - Status: (\d+)`)

func main() {
	logDir := flag.String("dir", "./logs", "log directory")
	day := flag.String("date", time.Now().Format("2006-01-02"), "day to analyze (YYYY-MM-DD)")
	flag.Parse()

	stats := &LogStats{
		PathHits:      make(map[string]int),
		ErrorPatterns: make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(*logDir, fmt.Sprintf("error-%s.log", *day)), stats)
	analyzeInfoLogs(filepath.Join(*logDir, fmt.Sprintf("info-%s.log", *day)), stats)

	printReport(*day, stats)
}

func scanLines(logFile string, fn func(line string)) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fn(scanner.Text())
	}
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	scanLines(logFile, func(line string) {
		stats.TotalErrors++
		switch {
		case strings.Contains(line, "Checkout failed for user"):
			stats.CheckoutFailures++
		case strings.Contains(line, "webhook rejected"):
			stats.RejectedWebhooks++
		}
		extractErrorPattern(line, stats)
	})
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	scanLines(logFile, func(line string) {
		switch {
		case strings.Contains(line, "paid from wallet"):
			stats.WalletOrders++
		case strings.Contains(line, "settled via"):
			stats.GatewaySettlements++
		case strings.Contains(line, "Ignoring duplicate"):
			stats.DuplicateWebhooks++
		case strings.Contains(line, "pending longer than"):
			stats.CancelledStale++
		}

		if m := requestLine.FindStringSubmatch(line); m != nil {
			stats.PathHits[m[1]+" "+m[2]]++
			if strings.HasPrefix(m[3], "5") {
				stats.ServerErrors++
			}
		}
	})
}

// extractErrorPattern keys on the message after the file:line prefix with
// ids and amounts stripped.
func extractErrorPattern(line string, stats *LogStats) {
	parts := strings.SplitN(line, ": ", 3)
	if len(parts) < 3 {
		return
	}
	msg := idPattern.ReplaceAllString(parts[2], "<id>")
	stats.ErrorPatterns[msg]++
}

var idPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F-]{27}|\b\d+(\.\d+)?\b`)

func printReport(day string, stats *LogStats) {
	fmt.Println("\n=== 233Plug Log Report ===")
	fmt.Println("Day:", day)
	fmt.Println("\n1. Orders & Payments:")
	fmt.Printf("   Wallet orders paid: %d\n", stats.WalletOrders)
	fmt.Printf("   Gateway settlements: %d\n", stats.GatewaySettlements)
	fmt.Printf("   Duplicate webhooks ignored: %d\n", stats.DuplicateWebhooks)
	fmt.Printf("   Checkout failures: %d\n", stats.CheckoutFailures)
	fmt.Printf("   Stale order sweeps: %d\n", stats.CancelledStale)

	fmt.Println("\n2. Webhook Security:")
	fmt.Printf("   Rejected webhooks: %d\n", stats.RejectedWebhooks)

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)
	fmt.Printf("   5xx Responses: %d\n", stats.ServerErrors)

	fmt.Println("\n4. Busiest Endpoints:")
	printTop(stats.PathHits, 5, "requests")

	fmt.Println("\n5. Most Common Errors:")
	printTop(stats.ErrorPatterns, 5, "occurrences")
}

func printTop(counts map[string]int, limit int, unit string) {
	type entry struct {
		key   string
		count int
	}

	var list []entry
	for k, n := range counts {
		list = append(list, entry{k, n})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].count == list[j].count {
			return list[i].key < list[j].key
		}
		return list[i].count > list[j].count
	})

	for i, e := range list {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d %s\n", e.key, e.count, unit)
	}
}
