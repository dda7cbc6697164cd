package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"

	"github.com/loctok/loctok"
)

// countWebURL fetches a page, converts it to markdown, and counts the
// markdown the same way a file would be counted.
func countWebURL(url string, opts loctok.Options) error {
	res, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("failed to fetch %s: status %d", url, res.StatusCode)
	}
	contentType := res.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "text/html") {
		return fmt.Errorf("unsupported content type %q for %s", contentType, url)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	title := url
	if doc, docErr := goquery.NewDocumentFromReader(strings.NewReader(string(body))); docErr == nil {
		if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
			title = t
		}
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(string(body))
	if err != nil {
		return fmt.Errorf("failed to convert %s to markdown: %w", url, err)
	}

	counter, err := loctok.NewCounter(opts)
	if err != nil {
		return err
	}
	tokens := loctok.CountText(counter, markdown)
	lines := loctok.CountNonEmptyLines(markdown)

	fmt.Printf("%s\n", boldStyle.Render(title))
	fmt.Printf("URL:    %s\n", url)
	fmt.Printf("Lines:  %s\n", fmtNum(lines))
	fmt.Printf("Tokens: %s\n", fmtNum(tokens))
	_ = os.Stdout.Sync()
	return nil
}
