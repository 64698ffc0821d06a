package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoConn *mongo.Client

var DBName = "absensi-karyawan-db"

const (
	UserCollection         = "users"
	AttendanceCollection   = "attendances"
	LeaveRequestCollection = "leave_requests"
	OvertimeCollection     = "overtimes"
	QRCodeCollection       = "qr_codes"
)

func MongoConnect(mongoURI string) {
	if mongoURI == "" {
		log.Fatal("MONGOSTRING belum di-set di env")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Gagal membuat MongoDB client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		log.Fatalf("Gagal terhubung ke MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Gagal ping MongoDB: %v", err)
	}

	log.Println("Terhubung ke MongoDB")
	MongoConn = client
}

func GetCollection(collectionName string) *mongo.Collection {
	if MongoConn == nil {
		log.Fatal("MongoDB client belum diinisialisasi. Panggil MongoConnect() dulu")
	}
	return MongoConn.Database(DBName).Collection(collectionName)
}

// InitDatabase membuat index keunikan. Dua index partial/compound di bawah
// menutup race check-then-act dari sisi storage: satu interval absensi
// terbuka per user, dan satu klaim lembur per user per tanggal.
func InitDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	users := GetCollection(UserCollection)
	attendances := GetCollection(AttendanceCollection)
	leaveRequests := GetCollection(LeaveRequestCollection)
	overtimes := GetCollection(OvertimeCollection)

	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "uuid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		log.Fatalf("Gagal membuat index users: %v", err)
	}

	_, err = attendances.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uuid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Paling banyak satu record "Checked In" per user.
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": "Checked In"}),
		},
		{
			Keys: bson.D{{Key: "check_in_time", Value: -1}},
		},
	})
	if err != nil {
		log.Fatalf("Gagal membuat index attendances: %v", err)
	}

	_, err = leaveRequests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "uuid", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Gagal membuat index leave_requests: %v", err)
	}

	_, err = overtimes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uuid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Satu klaim lembur per user per hari kalender.
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		log.Fatalf("Gagal membuat index overtimes: %v", err)
	}

	log.Println("Index database siap")
}

func DisconnectDB() {
	if MongoConn != nil {
		if err := MongoConn.Disconnect(context.Background()); err != nil {
			log.Fatalf("Error saat memutus koneksi MongoDB: %v", err)
		}
		log.Println("Koneksi MongoDB ditutup")
	}
}
