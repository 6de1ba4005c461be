package validators

import "go.mongodb.org/mongo-driver/bson"

var installmentSchema = bson.M{
	"bsonType": "object",
	"required": []string{"amount", "percentage", "scheduled_date", "status"},
	"properties": bson.M{
		"amount": bson.M{
			"bsonType": []string{"double", "int", "long", "decimal"},
			"minimum":  0,
		},
		"percentage": bson.M{
			"bsonType": []string{"int", "long"},
			"minimum":  0,
			"maximum":  100,
		},
		"scheduled_date": bson.M{
			"bsonType": "date",
		},
		"status": bson.M{
			"bsonType": "string",
			"enum": []string{
				"pending",
				"processing",
				"completed",
				"failed",
				"withheld",
			},
		},
		"paid_date": bson.M{
			"bsonType": "date",
		},
		"transaction_id": bson.M{
			"bsonType": "string",
		},
		"withhold_reason": bson.M{
			"bsonType": "string",
		},
	},
}

var PayoutScheduleValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"booking_id",
			"owner_id",
			"total_booking_amount",
			"first",
			"second",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"booking_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"owner_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"total_booking_amount": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},

			"first":  installmentSchema,
			"second": installmentSchema,

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
