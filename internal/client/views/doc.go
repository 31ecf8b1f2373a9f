// Package views derives the filtered and sorted projections of the record
// store and picks which projection the table shows.
//
// Filter and Sorter are explicit, user-triggered recomputations. They read
// the store at call time and write their result back; neither reacts to
// later changes of the canonical collection.
package views
