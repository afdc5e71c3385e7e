package writer

// Entry records one section file produced (or skipped) by a write.
type Entry struct {
	// Path is the section file path.
	Path string

	// Bytes is the section's size in bytes.
	Bytes int

	// Written is true when the file was created or its content
	// changed; false when the on-disk content already matched.
	Written bool
}

// Manifest summarizes the output of writing one document's sections.
type Manifest struct {
	// Dir is the document's output directory.
	Dir string

	// Entries lists section files in section order.
	Entries []Entry
}

// FilesWritten returns the number of files created or updated.
func (m *Manifest) FilesWritten() int {
	n := 0
	for _, e := range m.Entries {
		if e.Written {
			n++
		}
	}
	return n
}

// FilesUnchanged returns the number of files skipped as already
// up to date.
func (m *Manifest) FilesUnchanged() int {
	return len(m.Entries) - m.FilesWritten()
}

// BytesTotal returns the total section bytes across all entries.
func (m *Manifest) BytesTotal() int {
	total := 0
	for _, e := range m.Entries {
		total += e.Bytes
	}
	return total
}
