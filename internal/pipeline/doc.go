// Package pipeline drives records from a fastq.Reader through the front
// trimmer into a fastq.Writer and tallies what happened.
//
// One record is fully read, trimmed and written before the next is pulled;
// the only state carried between records is the Stats accumulator.
package pipeline
