// Package aggregate implements the style-guide aggregator: a sink that parses
// every buffered record it is handed, keeps the parsed documents in arrival
// order, and writes the whole collection to a diagnostic sink once input ends.
//
// A Transformer is a two-state machine. While Open it accepts Process calls;
// Finish renders the buffer, moves it to Finished and fires the completion
// callback. Nothing is forwarded downstream.
//
// Process and Finish must not be called concurrently. One Transformer serves
// exactly one run; build a new one for the next.
package aggregate
