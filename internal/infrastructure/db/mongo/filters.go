package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
)

func idFilter(id string) bson.M {
	return bson.M{"_id": id}
}

// excludeID adds an _id exclusion to filter when id is non-empty.
func excludeID(filter bson.M, id string) bson.M {
	if id != "" {
		filter["_id"] = bson.M{"$ne": id}
	}
	return filter
}

var byID = bson.D{{Key: "_id", Value: 1}}
