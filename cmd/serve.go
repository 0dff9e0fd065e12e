package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/salu133445/musecodec/midi"
)

var servePort int

func init() {
	addReprFlags(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the codecs over HTTP",
	Long:  `Serves the codecs over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// handleEncode takes a raw MIDI body and answers with the token JSON
// for the representation selected by the serve flags.
func handleEncode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}
	parsed, err := midi.ReadMidi(body)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	tokens, err := encodeMusic(midi.ToMusic(parsed))
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	json.NewEncoder(w).Encode(tokens)
}

// handleDecode takes token JSON and answers with a rendered MIDI file.
func handleDecode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}
	m, err := decodeTokens(body)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	midi.FromMusic(m).WriteTo(w)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/encode", handleEncode).Methods("POST")
	router.HandleFunc("/decode", handleDecode).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", servePort), handler))
}
