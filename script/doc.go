// Package script runs a line-oriented command language against a dual-indexed
// priority queue of int64 keys and values. It is meant for exercising the queue by
// hand or from test fixtures.
//
// Each line holds one command and its arguments separated by white space. Blank
// lines and lines starting with '#' are ignored.
//
//	insert K V        add the record (K, V)
//	change-value K V  move one record of K to value V
//	delete-min        remove a record with the smallest value
//	delete-max        remove a record with the largest value
//	min-value         print the smallest value
//	max-value         print the largest value
//	min-key           print a key of the smallest value
//	max-key           print a key of the largest value
//	size              print the number of records
//	empty             print whether the queue is empty
//	contains K        print whether any record has key K
//	save NAME         store a copy of the queue in slot NAME
//	load NAME         replace the queue with a copy of slot NAME
//	merge NAME        move every record of slot NAME into the queue
//	swap NAME         exchange the queue with slot NAME
//	compare NAME      print ==, < or > comparing the queue with slot NAME
//	clear             remove every record
//	validate          check the queue's internal consistency and print ok
//
// Basic usage:
//
//	r := script.New(os.Stdout, script.Options{})
//	err := r.Run(ctx, strings.NewReader("insert 1 42\ninsert 2 13\nmin-key\n"))
//	// prints 2
//
// Malformed lines stop the run with a *SyntaxError. Queue errors such as asking an
// empty queue for its minimum are printed and the run continues, unless
// Options.Strict is set.
package script
