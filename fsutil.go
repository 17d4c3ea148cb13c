package nrrd

import (
	"os"

	"github.com/nrrdgo/nrrd/errs"
)

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.New(errs.KindIOError, err, err.Error())
	}
	return f, nil
}

func createFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errs.New(errs.KindIOError, err, err.Error())
	}
	return f, nil
}
