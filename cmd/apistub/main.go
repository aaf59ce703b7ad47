// Command apistub hosts the in-memory NoteCompass API double for local
// development. State is lost on exit.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/dkrasnov/notecompass/internal/apistub"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	secret := flag.String("secret", "dev-secret", "token signing secret")
	flag.Parse()

	log.Printf("apistub listening on %s", *addr)
	if err := http.ListenAndServe(*addr, apistub.NewServer(*secret)); err != nil {
		log.Fatalf("%v", err)
	}
}
