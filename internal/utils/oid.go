package utils

import "go.mongodb.org/mongo-driver/v2/bson"

// Oid parses a 24 character hex identifier.
func Oid(hex string) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(hex)
}
