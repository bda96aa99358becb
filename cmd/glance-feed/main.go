// Command glance-feed checks feed files and prints the built-in feed in the
// format glance -feed accepts.
package main

import (
	"flag"
	"fmt"
	"os"

	"glance/internal/feed"
)

func main() {
	var check string
	var query string
	flag.StringVar(&check, "check", "", "Validate a TOML feed file")
	flag.StringVar(&query, "query", "", "Print the ids of items matching query")
	flag.Parse()

	items := feed.Default()
	if check != "" {
		loaded, err := feed.LoadFile(check)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", check, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d items ok\n", check, len(loaded))
		items = loaded
		if query == "" {
			return
		}
	}

	if query != "" {
		matches := feed.Filter(query, items)
		for _, item := range matches {
			fmt.Printf("%d\t%s\n", item.ItemID(), item.Kind())
		}
		if len(matches) == 0 {
			if word, ok := feed.Suggest(query, items); ok {
				fmt.Fprintf(os.Stderr, "no matches, did you mean %q?\n", word)
			}
		}
		return
	}

	data, err := feed.Encode(items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode feed: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
