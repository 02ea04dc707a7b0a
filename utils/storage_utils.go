package utils

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3-compatible object storage for product images. All settings come from
// the environment so deployments can point at any compatible endpoint.
func storageEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getS3Client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(storageEnv("S3_REGION", "us-east-1")),
		Endpoint: aws.String(os.Getenv("S3_ENDPOINT")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), "",
		),
	}))
	return s3.New(sess)
}

func bucketName() string {
	return storageEnv("S3_BUCKET", "storefront-media")
}

// UploadFileToS3 stores the file under folder/fileName and returns the
// public URL.
func UploadFileToS3(file []byte, fileName, folder, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	s3Client := getS3Client()
	_, err := s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(bucketName()),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	base := storageEnv("S3_PUBLIC_BASE_URL", fmt.Sprintf("https://%s.s3.amazonaws.com", bucketName()))
	return fmt.Sprintf("%s/%s", base, filePath), nil
}

func DeleteFileFromS3(fileName, folder string) error {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	s3Client := getS3Client()
	_, err := s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucketName()),
		Key:    aws.String(filePath),
	})
	if err != nil {
		return fmt.Errorf("unable to delete file from S3: %v", err)
	}
	return nil
}
