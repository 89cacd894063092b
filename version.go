package nfa

// Version is the library version, surfaced by the nfasim CLI.
const Version = "0.1.0"
