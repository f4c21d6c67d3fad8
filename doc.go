// Package handrank ranks poker hands in constant time.
//
// Every variant's hands are enumerated offline into equivalence classes,
// each class gets a dense ordinal (larger is better), and the resulting
// key-to-ordinal maps are compiled into PTHash-style perfect hash tables.
// A query adds up the card encodings, reads one or two table entries and
// returns the ordinal. Supported rules: standard high, ace-to-five and
// deuce-to-seven lowball, six-plus short deck, Badugi, Baduci, and Omaha
// high and low.
//
// # Basic Usage
//
// Build the tables once per process:
//
//	ev, err := handrank.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h := card.MustParseHand("Ah Kh Qh Jh Th 2c 3d")
//	r := ev.Standard(h)
//	fmt.Println(r.Category(), r) // Royal Flush Royal Flush
//
// Saving and reopening them skips the build:
//
//	if err := ev.WriteFile("tables.hrnk"); err != nil {
//	    log.Fatal(err)
//	}
//	ev, err = handrank.Open("tables.hrnk")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ev.Close()
//
// # Package Structure
//
//   - Public API: evaluator.go (rank methods), build.go (Build),
//     table_file.go (Open, Verify), table_writer.go (WriteFile)
//   - Configuration: build_options.go (BuildOption, With* functions)
//   - Results: ranks.go, category.go, display.go
//   - Serialization: header.go (header, directory entry, footer), digest.go
//   - Cards and hands: card/, deck/ (seeded dealing)
//   - Hand classes and tables: internal/enumerate/, internal/tables/
//   - Perfect hashing: internal/phf/
//   - Platform: fallocate_*.go, prefault_*.go, fadvise_*.go
//   - Command line: cmd/handrank/
package handrank
