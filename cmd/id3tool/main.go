package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"ktkr.us/pkg/fmtutil"

	"ktkr.us/pkg/id3tags"
	_ "ktkr.us/pkg/id3tags/id3/id3v1"
	_ "ktkr.us/pkg/id3tags/id3/id3v2"
)

var (
	flagLenient = flag.Bool("lenient", false, "skip frames that cannot be decoded")
	flagVerbose = flag.Bool("v", false, "log skipped frames and where frame parsing stopped")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("usage: %s [-lenient] [-v] <mp3 filename>", os.Args[0])
	}

	var opts []id3tags.Option
	if *flagLenient {
		opts = append(opts, id3tags.WithSkipUndecodableFrames())
	}
	if *flagVerbose {
		opts = append(opts, id3tags.WithLogger(log.New(os.Stderr, "", 0)))
	}

	tags, err := id3tags.ReadFile(flag.Arg(0), opts...)
	if err != nil {
		if tags == nil {
			log.Fatal(err)
		}
		log.Print(err)
	}

	if tags.HasV1 {
		log.Print("ID3v1")
		log.Printf("  Title:   %q", tags.Title)
		log.Printf("  Artist:  %q", tags.Artist)
		log.Printf("  Album:   %q", tags.Album)
		log.Printf("  Year:    %d", tags.Year)
		log.Printf("  Comment: %q", tags.Comment)
		log.Printf("  Track:   %d", tags.Track)
		log.Printf("  Genre:   %q", tags.Genre)
	}

	if tags.HasV2 {
		log.Printf("ID3v2.3, %d frames", len(tags.Frames))
		for _, k := range tags.Keys() {
			log.Printf("  %s %-40s %q", k, k.Description(), tags.Frames[k])
		}
		if s, ok := tags.Frame(id3tags.TLEN); ok {
			if ms, err := strconv.Atoi(s); err == nil {
				log.Printf("Length: %s", fmtutil.HMS(time.Duration(ms)*time.Millisecond))
			}
		}
	}

	if !tags.HasV1 && !tags.HasV2 {
		log.Print("no ID3 tags")
	}
}
