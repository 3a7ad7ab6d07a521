package health

// EntryCounter reports how many FAQ entries are loaded.
type EntryCounter interface {
	Len() int
}
