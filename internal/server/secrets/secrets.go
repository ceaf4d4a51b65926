// Package secrets resolves the token signing secret from configuration:
// an object in S3-compatible storage, a local file or a literal value,
// in that order of precedence.
package secrets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/tokenkeeper/internal/server/config"
)

// maxSecretSize bounds what is read from a file or object.
const maxSecretSize = 64 << 10

var ErrEmptySecret = errors.New("signing secret is empty")

var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		return c.GetObject(ctx, in)
	}
	readFile = os.ReadFile
)

// Load returns the signing secret described by cfg.
func Load(ctx context.Context, cfg *sc.Config) ([]byte, error) {
	var (
		secret []byte
		err    error
	)

	switch {
	case cfg.SecretKeyS3URI != "":
		secret, err = fromS3(ctx, cfg)
	case cfg.SecretKeyFile != "":
		secret, err = fromFile(cfg.SecretKeyFile)
	default:
		secret = []byte(cfg.SecretKey)
	}
	if err != nil {
		return nil, err
	}

	secret = bytes.TrimSpace(secret)
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return secret, nil
}

func fromFile(path string) ([]byte, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading secret file: %w", err)
	}
	if len(b) > maxSecretSize {
		return nil, fmt.Errorf("secret file %s is larger than %d bytes", path, maxSecretSize)
	}
	return b, nil
}

// ParseS3URI splits "s3://bucket/path/to/key".
func ParseS3URI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 URI %q: %w", uri, err)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q: want s3://bucket/key", uri)
	}
	return u.Host, key, nil
}

func newS3Client(ctx context.Context, cfg *sc.Config) (*s3.Client, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading s3 config: %w", err)
	}

	return newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		}
		// MinIO and most self-hosted stores do not support virtual-hosted buckets.
		o.UsePathStyle = true
	}), nil
}

func fromS3(ctx context.Context, cfg *sc.Config) ([]byte, error) {
	bucket, key, err := ParseS3URI(cfg.SecretKeyS3URI)
	if err != nil {
		return nil, err
	}

	client, err := newS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}

	out, err := getObject(client, ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching secret object: %w", err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(io.LimitReader(out.Body, maxSecretSize+1))
	if err != nil {
		return nil, fmt.Errorf("error reading secret object: %w", err)
	}
	if len(b) > maxSecretSize {
		return nil, fmt.Errorf("secret object is larger than %d bytes", maxSecretSize)
	}
	return b, nil
}
