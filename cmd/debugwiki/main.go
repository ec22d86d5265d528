package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/refdex/refdex/internal/wiki"
)

func main() {
	base := os.Getenv("WIKI_BASE_URL")
	q := "artillery"
	if len(os.Args) > 1 {
		q = os.Args[1]
	}
	client := &wiki.Client{BaseURL: base, HTTPClient: &http.Client{Timeout: 20 * time.Second}, UserAgent: "debugwiki/1.0"}
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()
	titles, err := client.Search(ctx, q, 5)
	fmt.Println("err:", err)
	for i, t := range titles {
		p, perr := client.Page(ctx, t)
		fmt.Printf("%d. %s — %s (err: %v)\n", i+1, t, p.URL, perr)
	}
}
