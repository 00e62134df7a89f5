package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-vuetag/internal/prompt"
)

func main() {
	opts := options{}
	flag.StringVar(&opts.component, "component", "", "component name rendered in the is attribute")
	flag.StringVar(&opts.attrs, "attrs", "", "attributes as a JSON object, e.g. '{\"active\": true}'")
	flag.StringVar(&opts.directive, "directive", "vue", "directive to render (vue, vueinline or one from -config)")
	flag.StringVar(&opts.configPath, "config", "", "YAML or JSON file with directive definitions")
	flag.BoolVar(&opts.interactive, "interactive", false, "prompt for the component and attributes")
	flag.BoolVar(&opts.bare, "bare", false, "render only the component tags, without the directive's inner wrapper")
	flag.StringVar(&opts.body, "body", "", "markup placed between the start and end tags")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	var driver prompt.Driver
	if opts.interactive {
		driver = prompt.Survey()
	}

	markup, err := run(context.Background(), opts, driver)
	if err != nil {
		log.Fatalf("vuetag: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(markup+"\n"), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Markup written to %s\n", *output)
		return
	}
	fmt.Println(markup)
}
