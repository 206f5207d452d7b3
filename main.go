package main

import (
	"net/http"
	"os"

	"divebuddy_server/routes"
	"divebuddy_server/services"
	"divebuddy_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Initialize the record store
	var store services.RecordStore
	if os.Getenv("STORE") == "memory" {
		logger.Infow("using in-memory record store")
		store = services.NewMemoryStore()
	} else {
		logger.Infow("initializing DynamoDB client", "region", os.Getenv("AWS_REGION"))
		dynamoClient := services.InitializeDynamoDBClient()
		store = &services.DynamoRecordStore{
			Dynamo: &services.DynamoService{Client: dynamoClient},
			Logger: logger,
		}
	}

	// Initialize services
	matchService := &services.MatchService{Store: store, Logger: logger}
	swipeService := &services.SwipeService{
		Store:           store,
		Matches:         matchService,
		Logger:          logger,
		RejectSelfSwipe: os.Getenv("REJECT_SELF_SWIPE") == "true",
	}
	chatService := &services.ChatService{Store: store, Logger: logger}
	diverService := &services.DiverService{Store: store, Logger: logger}
	s3Service := &services.S3Service{Client: services.NewS3Client(), Bucket: os.Getenv("S3_BUCKET_NAME")}

	// Initialize the Socket.IO server for realtime chat fanout
	socketServer := socket.NewSocketServer(logger)
	go func() {
		if err := socketServer.Serve(); err != nil {
			logger.Errorw("socket server stopped", "error", err)
		}
	}()
	defer socketServer.Close()

	// Initialize the router
	r := mux.NewRouter()
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterRoutes(r, store, logger)
	routes.RegisterDiverRoutes(r, diverService, logger)
	routes.RegisterSwipeRoutes(r, swipeService, logger)
	routes.RegisterChatRoutes(r, chatService, socketServer, logger)
	routes.RegisterMatchRoutes(r, matchService, logger)
	routes.RegisterS3Routes(r, s3Service, logger)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Infow("starting server", "port", port)
	if err := http.ListenAndServe(":"+port, corsHandler); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
