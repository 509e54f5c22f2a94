// Package archive stores the voter snapshot behind each aggregate cycle as a
// Parquet object on S3.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/internal/entity"
	votersconfig "github.com/bpmon-network/bpmon/modules/voters/config"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/bpmon-network/bpmon/pkg/parquetutils"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const contentType = "application/vnd.apache.parquet"

type voterRecord struct {
	ID             int64  `parquet:"name=id, type=INT64"`
	Owner          string `parquet:"name=owner, type=BYTE_ARRAY, convertedtype=UTF8"`
	Proxy          string `parquet:"name=proxy, type=BYTE_ARRAY, convertedtype=UTF8"`
	Producers      string `parquet:"name=producers, type=BYTE_ARRAY, convertedtype=UTF8"`
	LastVoteWeight string `parquet:"name=last_vote_weight, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsProxy        bool   `parquet:"name=is_proxy, type=BOOLEAN"`
	FIOAddress     string `parquet:"name=fio_address, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// Encode converts a voter snapshot into a Parquet file. Producers are stored comma separated.
func Encode(voters []entity.Voter) ([]byte, error) {
	records := lo.Map(voters, func(voter entity.Voter, _ int) voterRecord {
		return voterRecord{
			ID:             int64(voter.ID),
			Owner:          voter.Owner,
			Proxy:          voter.Proxy,
			Producers:      strings.Join(voter.Producers, ","),
			LastVoteWeight: voter.LastVoteWeight,
			IsProxy:        voter.IsProxy,
			FIOAddress:     voter.FIOAddress,
		}
	})
	data, err := parquetutils.WriteAll(records)
	if err != nil {
		return nil, errors.Wrap(err, "can't encode voters snapshot")
	}
	return data, nil
}

// ObjectKey returns the object key of a snapshot: <prefix>/<network>/<yyyy>/<mm>/<dd>/voters-<unix>.parquet
func ObjectKey(prefix string, network common.Network, takenAt time.Time) string {
	takenAt = takenAt.UTC()
	return path.Join(
		prefix,
		network.String(),
		takenAt.Format("2006/01/02"),
		fmt.Sprintf("voters-%d.parquet", takenAt.Unix()),
	)
}

// S3Archiver uploads voter snapshots to an S3 bucket.
type S3Archiver struct {
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

func NewS3Archiver(ctx context.Context, conf votersconfig.ArchiveConfig) (*S3Archiver, error) {
	if conf.Bucket == "" {
		return nil, errors.New("archive bucket is required")
	}
	sdkConfig, err := config.LoadDefaultConfig(ctx, config.WithRegion(conf.Region))
	if err != nil {
		return nil, errors.Wrap(err, "can't load aws user config")
	}

	s3client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Archiver{
		uploader: manager.NewUploader(s3client),
		bucket:   conf.Bucket,
		prefix:   strings.Trim(conf.Prefix, "/"),
	}, nil
}

func (a *S3Archiver) Archive(ctx context.Context, network common.Network, takenAt time.Time, voters []entity.Voter) error {
	data, err := Encode(voters)
	if err != nil {
		return errors.WithStack(err)
	}

	key := ObjectKey(a.prefix, network, takenAt)
	if _, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}); err != nil {
		return errors.Wrapf(err, "can't upload voters snapshot to s3://%s/%s", a.bucket, key)
	}

	logger.InfoContext(ctx, "Archived voters snapshot",
		slogx.String("bucket", a.bucket),
		slogx.String("key", key),
		slogx.Int("voters", len(voters)),
		slogx.Int("bytes", len(data)),
	)
	return nil
}
