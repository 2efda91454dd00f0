package src2doc_test

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	src2doc "github.com/alnah/go-src2doc"
)

// Example demonstrates basic documentation generation from an annotated
// source file.
func Example() {
	generator, err := src2doc.NewGenerator()
	if err != nil {
		log.Fatal(err)
	}
	defer generator.Close()

	source := "// Bakes a **cake** from flour.\n" +
		"function bake(flour) {\n" +
		"  return new Cake(flour);\n" +
		"}"

	result, err := generator.Generate(context.Background(), src2doc.Input{
		Source: source,
		Path:   "cake.js",
	})
	if err != nil {
		log.Fatal(err)
	}

	if strings.Contains(string(result.HTML), "<strong>cake</strong>") {
		fmt.Println("HTML generated successfully")
	}
	// Output: HTML generated successfully
}

// ExampleWithStyle selects a built-in stylesheet by name.
func ExampleWithStyle() {
	generator, err := src2doc.NewGenerator(
		src2doc.WithStyle("plain"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer generator.Close()

	result, err := generator.Generate(context.Background(), src2doc.Input{
		Source: "// A minimal page.\nlet x = 1",
		Path:   "minimal.js",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(strings.Contains(string(result.HTML), "Georgia"))
	// Output: true
}

// ExampleNewAssetLoader loads a built-in style through the public loader.
func ExampleNewAssetLoader() {
	loader, err := src2doc.NewAssetLoader("")
	if err != nil {
		log.Fatal(err)
	}

	css, err := loader.LoadStyle(src2doc.DefaultStyleName)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(css) > 0)
	// Output: true
}

// ExampleGeneratorPool documents several files concurrently with a bounded
// number of generators.
func ExampleGeneratorPool() {
	pool := src2doc.NewGeneratorPool(2)
	defer pool.Close()

	sources := map[string]string{
		"bake.js":  "// Mixes the batter.\nfunction mix() {}",
		"serve.js": "// Plates each slice.\nfunction serve() {}",
	}

	var wg sync.WaitGroup
	results := make(chan string, len(sources))

	for path, source := range sources {
		wg.Add(1)
		go func(path, source string) {
			defer wg.Done()

			generator, err := pool.Acquire()
			if err != nil {
				results <- fmt.Sprintf("%s: %v", path, err)
				return
			}
			defer pool.Release(generator)

			if _, err := generator.Generate(context.Background(), src2doc.Input{
				Source: source,
				Path:   path,
			}); err != nil {
				results <- fmt.Sprintf("%s: %v", path, err)
				return
			}
			results <- path + ": ok"
		}(path, source)
	}

	wg.Wait()
	close(results)

	succeeded := 0
	for msg := range results {
		if strings.HasSuffix(msg, ": ok") {
			succeeded++
		}
	}
	fmt.Printf("%d documents generated\n", succeeded)
	// Output: 2 documents generated
}
