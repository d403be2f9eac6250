// Command adder is a sample dynamic program. Built into <root>/cgi-bin/adder
// it answers /cgi-bin/adder?15000&213 with the sum of the two numbers.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("component", "adder").Logger()

	body, err := render(os.Getenv("QUERY_STRING"))
	if err != nil {
		logger.Warn().Err(err).Msg("bad query")
	}

	fmt.Fprintf(os.Stdout, "Connection: close\r\n")
	fmt.Fprintf(os.Stdout, "Content-Length: %d\r\n", len(body))
	fmt.Fprintf(os.Stdout, "Content-Type: text/html\r\n\r\n")
	fmt.Fprint(os.Stdout, body)
}

func render(query string) (string, error) {
	a, b, err := parseArgs(query)
	if err != nil {
		return fmt.Sprintf("Welcome to add.com: %v\r\n", err), err
	}

	var body strings.Builder
	body.WriteString("Welcome to add.com: ")
	body.WriteString("THE Internet addition portal.\r\n<p>")
	fmt.Fprintf(&body, "The answer is: %d + %d = %d\r\n<p>", a, b, a+b)
	body.WriteString("Thanks for visiting!\r\n")
	return body.String(), nil
}

func parseArgs(query string) (int, int, error) {
	left, right, found := strings.Cut(query, "&")
	if !found {
		return 0, 0, fmt.Errorf("expected two arguments separated by '&' but got %q", query)
	}

	a, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid first argument: %w", err)
	}

	b, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid second argument: %w", err)
	}

	return a, b, nil
}
