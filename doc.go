// Package aipr transforms book chapters for the AI Pocket Reference
// mdBook-style build.
//
// # Quick Start
//
// Create a preprocessor and run it over a book:
//
//	pre := aipr.New()
//	book, err := pre.Run(book)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The returned book has the same shape as the input; only chapter content
// changes. On error the input book is left untouched.
//
// # Transformation Pipeline
//
// Each chapter goes through these stages:
//
//  1. Header macro expansion: every {{#aipr_header ...}} token is replaced
//     with a rendered HTML header fragment (author attribution, reading
//     time, optional Colab and Suggest-an-Edit badges).
//  2. Link rewriting: external [text](url) markdown links become anchors
//     that open in a new tab. Links inside code spans and links escaped
//     with a leading backslash or image bang are left alone.
//  3. Footer append: a fixed footer fragment is added to the chapter.
//
// # Configuration
//
// Use functional options to customize the engine:
//
//	pre := aipr.New(
//	    aipr.WithWordsPerMinute(250),
//	    aipr.WithColabBaseURL("https://colab.research.google.com/github/acme/nb/blob/main/"),
//	    aipr.WithAuthors(authors),
//	)
//
// # Macro Surface
//
// Supported forms inside chapter markdown:
//
//	{{#aipr_header}}
//	{{#aipr_header colab=nlp/lora.ipynb}}
//	{{#aipr_header colab=nlp/lora.ipynb,reading_time=false}}
//	{{#aipr_header submit_issue=false}}
//
// Arguments are comma-separated key=value pairs. Unknown keys, pairs
// without '=', and boolean values other than true/false fail the whole
// run with ErrMalformedMacroArguments.
package aipr
