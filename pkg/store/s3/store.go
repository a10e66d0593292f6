package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/modelyard/reportdeck/pkg/store/artifact"
)

// Store serves report artifacts synced to an S3 bucket by the report
// generation pipeline. Object keys mirror the local layout:
// `<prefix>/<project>/<period>/<report>[/<part>]`.
type Store struct {
	client *awss3.Client
	bucket string
	prefix string
}

func NewStore(cfg aws.Config, bucket, prefix string, optFns ...func(*awss3.Options)) *Store {
	return &Store{
		client: awss3.NewFromConfig(cfg, optFns...),
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (s *Store) List(ctx context.Context, p string) ([]artifact.Entry, error) {
	// The bucket root with no configured prefix lists with an empty key
	// prefix; "/" would never match keys like `project/period/...`.
	dirKey := s.key(p)
	if dirKey != "" {
		dirKey += "/"
	}

	var entries []artifact.Entry
	var continuationToken *string

	for {
		resp, err := s.client.ListObjectsV2(ctx, &awss3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(dirKey),
			Delimiter:         aws.String("/"),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list s3 objects under %q: %w", dirKey, err)
		}

		for _, cp := range resp.CommonPrefixes {
			name := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(cp.Prefix), dirKey), "/")
			if name != "" {
				entries = append(entries, artifact.Entry{Name: name, Dir: true})
			}
		}
		for _, obj := range resp.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), dirKey)
			if name != "" {
				entries = append(entries, artifact.Entry{Name: name, Dir: false})
			}
		}

		if !aws.ToBool(resp.IsTruncated) {
			break
		}
		continuationToken = resp.NextContinuationToken
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (s *Store) Stat(ctx context.Context, p string) (artifact.Info, error) {
	key := s.key(p)

	head, err := s.client.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return artifact.Info{Kind: artifact.KindFile, ModTime: aws.ToTime(head.LastModified)}, nil
	}

	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return artifact.Info{}, fmt.Errorf("failed to stat s3 object %q: %w", key, err)
	}

	// Not an object; a "directory" exists if any key sits under it. The
	// newest part's timestamp stands in for the directory mtime.
	newest, found, err := s.newestUnder(ctx, key+"/")
	if err != nil {
		return artifact.Info{}, err
	}
	if !found {
		return artifact.Info{Kind: artifact.KindMissing}, nil
	}
	return artifact.Info{Kind: artifact.KindDir, ModTime: newest}, nil
}

func (s *Store) Read(ctx context.Context, p string) ([]byte, error) {
	key := s.key(p)

	resp, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read s3 object %q: %w", key, err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3 object %q: %w", key, err)
	}
	return content, nil
}

func (s *Store) newestUnder(ctx context.Context, dirKey string) (time.Time, bool, error) {
	var newest time.Time
	var found bool
	var continuationToken *string

	for {
		resp, err := s.client.ListObjectsV2(ctx, &awss3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(dirKey),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return time.Time{}, false, fmt.Errorf("failed to list s3 objects under %q: %w", dirKey, err)
		}

		for _, obj := range resp.Contents {
			found = true
			if mod := aws.ToTime(obj.LastModified); mod.After(newest) {
				newest = mod
			}
		}

		if !aws.ToBool(resp.IsTruncated) {
			break
		}
		continuationToken = resp.NextContinuationToken
	}

	return newest, found, nil
}

func (s *Store) key(p string) string {
	if s.prefix == "" {
		return strings.Trim(p, "/")
	}
	return path.Join(s.prefix, strings.Trim(p, "/"))
}
