// Package main implements the finassist CLI for querying a running
// finassistd HTTP server.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	// serverURL is the base URL for the finassistd HTTP server
	serverURL string
	// showExplanation prints the tier explanation with each answer
	showExplanation bool
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "finassist",
	Short: "CLI for the LendKraft financial assistant",
	Long: `finassist is a command-line interface for the LendKraft financial
assistant server. It can run one-shot queries, an interactive chat
session, and report assistant metadata.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "finassistd server URL")
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(healthCmd)
}

// queryCmd runs a single query and prints the answer
var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Ask the assistant a single question",
	Long: `Ask the assistant a single question and print the answer.

Examples:
  # One-shot question
  finassist query "What is the interest rate for a personal loan?"

  # Read the question from stdin
  echo "How is EMI calculated?" | finassist query -

  # Include the tier explanation
  finassist query --explain "How is EMI calculated?"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

// chatCmd starts an interactive session
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session against the assistant server.

Session commands:
  info       show assistant metadata and corpus statistics
  examples   show example questions
  exit       leave the session`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

// infoCmd prints assistant metadata
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show assistant metadata and corpus statistics",
	RunE:  runInfo,
}

// healthCmd checks server health
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check finassistd server health",
	RunE:  runHealth,
}

func init() {
	queryCmd.Flags().BoolVar(&showExplanation, "explain", false, "print why the answering tier was chosen")
	chatCmd.Flags().BoolVar(&showExplanation, "explain", false, "print why the answering tier was chosen")
}

// QueryRequest matches internal/httpapi/server.go QueryRequest
type QueryRequest struct {
	Query       string `json:"query"`
	ExplainTier bool   `json:"explain_tier"`
}

// QueryResponse matches internal/assistant/assistant.go Envelope
type QueryResponse struct {
	QueryID            string   `json:"query_id"`
	Response           string   `json:"response"`
	Tier               string   `json:"tier"`
	Confidence         float64  `json:"confidence"`
	Source             string   `json:"source"`
	Success            bool     `json:"success"`
	Explanation        string   `json:"explanation,omitempty"`
	MatchedInstruction string   `json:"matched_instruction,omitempty"`
	RAGSources         []string `json:"rag_sources,omitempty"`
	Error              string   `json:"error,omitempty"`
}

// InfoResponse matches internal/assistant/info.go Info
type InfoResponse struct {
	System     string   `json:"system"`
	Version    string   `json:"version"`
	Compliance []string `json:"compliance"`
	Tiers      []string `json:"tiers"`
	DatasetStats struct {
		TotalSamples         int            `json:"total_samples"`
		Categories           map[string]int `json:"categories"`
		AvgInstructionLength float64        `json:"avg_instruction_length"`
		AvgOutputLength      float64        `json:"avg_output_length"`
		EmbeddingDimensions  int            `json:"embedding_dimensions"`
	} `json:"dataset_stats"`
	RAGStats struct {
		TotalDocuments int            `json:"total_documents"`
		Categories     map[string]int `json:"categories"`
	} `json:"rag_stats"`
}

// HealthResponse matches internal/httpapi/server.go HealthResponse
type HealthResponse struct {
	Status string `json:"status"`
}

var exampleQueries = []string{
	"What is the interest rate for a personal loan?",
	"How do I check my loan application status?",
	"How is EMI calculated for a home loan?",
	"Can I prepay my loan without penalty?",
	"What factors affect my loan eligibility?",
}

// runQuery handles the query command
func runQuery(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 0 || args[0] == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		text = strings.TrimSpace(string(content))
	} else {
		text = args[0]
	}

	if text == "" {
		return fmt.Errorf("no question to ask")
	}

	resp, err := postQuery(text)
	if err != nil {
		return err
	}
	printAnswer(resp)
	return nil
}

// runChat handles the interactive session
func runChat(cmd *cobra.Command, args []string) error {
	fmt.Println("LendKraft Financial Assistant")
	fmt.Printf("Connected to %s\n", serverURL)
	fmt.Println("Type a question, or 'info', 'examples', 'exit'.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			fmt.Println("Goodbye.")
			return nil
		case "info":
			if err := runInfo(cmd, nil); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		case "examples":
			fmt.Println("Try one of these:")
			for _, q := range exampleQueries {
				fmt.Printf("  - %s\n", q)
			}
			continue
		}

		resp, err := postQuery(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		printAnswer(resp)
		fmt.Println()
	}
}

// runInfo handles the info command
func runInfo(cmd *cobra.Command, args []string) error {
	resp, err := httpClient(5 * time.Second).Get(fmt.Sprintf("%s/api/v1/info", serverURL))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", serverURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	var info InfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	fmt.Printf("%s (v%s)\n", info.System, info.Version)
	fmt.Printf("Tiers: %s\n", strings.Join(info.Tiers, " -> "))
	fmt.Printf("Dataset: %d curated samples\n", info.DatasetStats.TotalSamples)
	for category, count := range info.DatasetStats.Categories {
		fmt.Printf("  %-20s %d\n", category, count)
	}
	fmt.Printf("Knowledge base: %d documents\n", info.RAGStats.TotalDocuments)
	fmt.Println("Compliance:")
	for _, c := range info.Compliance {
		fmt.Printf("  - %s\n", c)
	}
	return nil
}

// runHealth handles the health command
func runHealth(cmd *cobra.Command, args []string) error {
	resp, err := httpClient(5 * time.Second).Get(fmt.Sprintf("%s/health", serverURL))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect to %s: %v\n", serverURL, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	fmt.Printf("Server Status: %s\n", health.Status)
	fmt.Printf("Server URL: %s\n", serverURL)
	return nil
}

func postQuery(text string) (*QueryResponse, error) {
	reqJSON, err := json.Marshal(QueryRequest{Query: text, ExplainTier: showExplanation})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/query", serverURL)
	resp, err := httpClient(60*time.Second).Post(url, "application/json", bytes.NewReader(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to send request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var out QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

func printAnswer(resp *QueryResponse) {
	fmt.Println(resp.Response)
	fmt.Printf("[tier: %s, confidence: %.2f, source: %s]\n", resp.Tier, resp.Confidence, resp.Source)
	if len(resp.RAGSources) > 0 {
		fmt.Printf("[grounded on: %s]\n", strings.Join(resp.RAGSources, "; "))
	}
	if showExplanation && resp.Explanation != "" {
		fmt.Printf("[why: %s]\n", resp.Explanation)
	}
	if !resp.Success && resp.Error != "" {
		fmt.Fprintf(os.Stderr, "[error: %s]\n", resp.Error)
	}
}

func httpClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func statusError(resp *http.Response) error {
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return fmt.Errorf("server returned status %d (failed to read response body: %w)", resp.StatusCode, readErr)
	}
	return fmt.Errorf("server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
