package s3

import (
	"context"
	"log/slog"

	"github.com/bornholm/vitrine/internal/catalog/source"
	"github.com/bornholm/vitrine/internal/schema"
	"github.com/bornholm/vitrine/pkg/log"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const (
	Type          source.Type = "s3"
	DefaultObject             = "projects.yml"
)

func init() {
	source.Register(Type, CreateSourceFromOptions)
}

type Options struct {
	Endpoint  string `mapstructure:"endpoint" yaml:"endpoint"`
	AccessKey string `mapstructure:"accessKey" yaml:"accessKey"`
	SecretKey string `mapstructure:"secretKey" yaml:"secretKey"`
	Region    string `mapstructure:"region" yaml:"region"`
	Bucket    string `mapstructure:"bucket" yaml:"bucket"`
	Object    string `mapstructure:"object" yaml:"object"`
	Secure    bool   `mapstructure:"secure" yaml:"secure"`
}

// Source reads the catalog document from an object of an S3 compatible
// bucket.
type Source struct {
	client *minio.Client
	bucket string
	object string
}

// Projects implements source.Source.
func (s *Source) Projects(ctx context.Context) ([]schema.Project, error) {
	slog.DebugContext(ctx, "fetching catalog object", log.ScrubbedURL("endpoint", s.client.EndpointURL().String()), slog.String("bucket", s.bucket), slog.String("object", s.object))

	object, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer object.Close()

	projects, err := source.DecodeDocument(object)
	if err != nil {
		var errResp minio.ErrorResponse
		if errors.As(err, &errResp) && errResp.Code == "NoSuchKey" {
			return nil, errors.Errorf("catalog object '%s' not found in bucket '%s'", s.object, s.bucket)
		}

		return nil, errors.Wrapf(err, "could not decode catalog object '%s'", s.object)
	}

	return projects, nil
}

func NewSource(client *minio.Client, bucket, object string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		object: object,
	}
}

var _ source.Source = &Source{}

func CreateSourceFromOptions(options any) (source.Source, error) {
	opts := Options{
		Object: DefaultObject,
	}

	if err := source.DecodeOptions(Type, options, &opts); err != nil {
		return nil, errors.WithStack(err)
	}

	if opts.Bucket == "" {
		return nil, errors.Errorf("'%s' catalog source requires a bucket", Type)
	}

	if opts.Object == "" {
		opts.Object = DefaultObject
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.Secure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not create '%s' client", Type)
	}

	return NewSource(client, opts.Bucket, opts.Object), nil
}
