//go:build ignore

// ====================================================
// serves web_build so the wasm build can be played
// in a browser
//
// usage :
// 	go run build.go web
// 	go run run_web.go
// ====================================================

package main

import (
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var (
	TargetFolder string
	Port         uint
)

func init() {
	flag.StringVar(&TargetFolder, "folder", "./web_build", "folder to serve")
	flag.UintVar(&Port, "port", 6969, "port")
}

func main() {
	flag.Parse()

	if Port > math.MaxUint16 {
		fmt.Fprintf(os.Stderr, "port %v is bigger than max port value\n", Port)
		os.Exit(1)
	}

	if !filepath.IsLocal(TargetFolder) {
		fmt.Fprintf(os.Stderr, "%s is not a local folder\n", TargetFolder)
		os.Exit(1)
	}

	if info, err := os.Stat(filepath.Join(TargetFolder, "jigsaw.wasm")); err != nil || info.IsDir() {
		fmt.Fprintf(os.Stderr, "no jigsaw.wasm in %s, run \"go run build.go web\" first\n", TargetFolder)
		os.Exit(1)
	}

	fmt.Printf("serving %s\n", TargetFolder)
	fmt.Printf("listening to http://localhost:%v\n", Port)

	fs := http.FileServer(http.Dir(TargetFolder))
	err := http.ListenAndServe(fmt.Sprintf("localhost:%v", Port), NoCache(fs))

	if err != nil {
		panic(err)
	}
}


var epoch = time.Unix(0, 0).Format(time.RFC1123)

var noCacheHeaders = map[string]string{
	"Expires":         epoch,
	"Cache-Control":   "no-cache, private, max-age=0",
	"Pragma":          "no-cache",
	"X-Accel-Expires": "0",
}

var etagHeaders = []string{
	"ETag",
	"If-Modified-Since",
	"If-Match",
	"If-None-Match",
	"If-Range",
	"If-Unmodified-Since",
}

func NoCache(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		for _, v := range etagHeaders {
			if r.Header.Get(v) != "" {
				r.Header.Del(v)
			}
		}

		for k, v := range noCacheHeaders {
			w.Header().Set(k, v)
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
