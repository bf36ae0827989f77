package ports

import "context"

type ImageLister interface {
	ListImages(ctx context.Context, dir string) ([]string, error)
}

type Locker interface {
	Lock(ctx context.Context, path string) (unlock func() error, err error)
}
