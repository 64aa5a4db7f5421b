// Package dialect translates English text between its American and British
// variants.
//
// Dialect substitutes region-specific vocabulary, spelling, honorifics and
// time notation while keeping the original capitalization and punctuation,
// and reports which terms it changed.
//
// Basic usage:
//
//	import (
//	    "github.com/ZaguanLabs/dialect"
//	    "github.com/ZaguanLabs/dialect/cache"
//	    "github.com/ZaguanLabs/dialect/tables"
//	)
//
//	func main() {
//	    // Load the bundled word tables once at start-up
//	    t, err := tables.Default()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Create translator
//	    tr := dialect.NewTranslator(dialect.BuildDictionaries(t),
//	        dialect.WithCache(cache.NewInMemoryCache(3600)),
//	    )
//
//	    result := tr.Translate("Mangoes are my favorite fruit.", dialect.ToBritish)
//	    fmt.Println(result.Text)  // Mangoes are my favourite fruit.
//	    fmt.Println(result.Terms) // [favourite]
//	}
package dialect
