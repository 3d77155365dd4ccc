// Package publish uploads rendered files to the publish bucket.
package publish

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/util"
)

func contentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi":
		return "audio/midi"
	case ".wav":
		return "audio/wav"
	case ".ly":
		return "text/x-lilypond"
	default:
		return "application/octet-stream"
	}
}

// UploadAll puts each file under keyPrefix in the publish bucket and
// returns the object keys.
func UploadAll(paths []string, keyPrefix string) []string {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(constants.GetPublishRegion()),
	})
	if err != nil {
		panic("Could not create a new S3 session because " + err.Error())
	}

	client := s3.New(sess)
	bucket := constants.GetPublishBucket()

	var keys []string
	for i, path := range paths {
		fmt.Printf("Uploading %v of %v: %v\n", i+1, len(paths), path)
		key := filepath.Join(keyPrefix, filepath.Base(path))

		f := util.OpenFileOrPanic(path)
		_, err = client.PutObject(&s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String(contentType(path)),
		})
		f.Close()
		if err != nil {
			panic("Could not upload " + path + " because: " + err.Error())
		}
		keys = append(keys, key)
	}
	return keys
}
