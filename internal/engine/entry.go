package engine

// Match is a single entry returned by a query, with its position in the log.
type Match struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// ValueCount is the number of times a value appears in a log.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
	First int    `json:"first"` // Index of the first occurrence
}

// Stats contains summary figures for a log.
type Stats struct {
	Entries      int `json:"entries"`       // total count, duplicates included
	Distinct     int `json:"distinct"`      // unique values
	PayloadBytes int `json:"payload_bytes"` // sum of value lengths
	MemoryBytes  int `json:"memory_bytes"`  // estimated
}
