package downloader

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_downloader.go github.com/curatord/curatord/pkg/downloader IDownloader
