// Package providers holds infrastructure shared by the sentiment provider
// adapters: request pacing, HTTP status classification and HTTP clients.
//
// Each cloud service lives in its own subpackage:
//
//   - comprehend: Amazon Comprehend (aws-sdk-go-v2)
//   - textanalytics: Azure Text Analytics (REST)
//   - naturallanguage: Google Cloud Natural Language (google.golang.org/api)
//   - watson: IBM Watson NLU (REST with IAM tokens)
package providers
