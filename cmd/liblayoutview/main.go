// Command liblayoutview builds layoutview as a C shared library:
//
//	go build -buildmode=c-shared -o liblayoutview.so ./cmd/liblayoutview
//
// It exports two functions:
//
//	char* classify_excel_sheets_c(const char* path);
//	void free_c_string(char* s);
//
// classify_excel_sheets_c returns the compact JSON array produced by the
// command line tool, or NULL on any failure. Every non-NULL result must be
// released with free_c_string.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"sync"
	"unsafe"

	"github.com/ukaji3/layoutview-go/internal/logging"
	"github.com/ukaji3/layoutview-go/pkg/layoutview"
)

// The host process owns stderr, so logging is switched off on first use.
var quietLogs sync.Once

//export classify_excel_sheets_c
func classify_excel_sheets_c(path *C.char) *C.char {
	if path == nil {
		return nil
	}
	data, ok := classify(C.GoString(path))
	if !ok {
		return nil
	}
	return C.CString(string(data))
}

// classify runs ClassifyJSON with logging off and turns any failure, panics
// included, into ok == false.
func classify(path string) (data []byte, ok bool) {
	quietLogs.Do(func() {
		logging.Init(logging.Config{Level: "disabled"})
	})
	defer func() {
		if r := recover(); r != nil {
			data, ok = nil, false
		}
	}()

	data, err := layoutview.ClassifyJSON(context.Background(), path)
	if err != nil {
		return nil, false
	}
	return data, true
}

//export free_c_string
func free_c_string(s *C.char) {
	if s == nil {
		return
	}
	C.free(unsafe.Pointer(s))
}

func main() {}
