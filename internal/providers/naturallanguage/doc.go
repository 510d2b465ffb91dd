// Package naturallanguage analyses sentiment with Google Cloud Natural Language.
//
// The API has no batch endpoint, so documents.analyzeSentiment is called once
// per sentence, paced by a rate limiter. Credentials come from a service
// account or authorised user JSON file, exchanged for OAuth2 tokens.
package naturallanguage
