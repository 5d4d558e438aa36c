package api

import (
	"context"
	"fmt"

	"github.com/Dinhh-Chan/aic-judges/api/controllers"
	"github.com/Dinhh-Chan/aic-judges/api/transport"
	"github.com/Dinhh-Chan/aic-judges/api/views"
	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/Dinhh-Chan/aic-judges/session"
	"github.com/Dinhh-Chan/aic-judges/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	mode := gin.ReleaseMode
	if s.config.Local {
		mode = gin.DebugMode
	}
	r := transport.NewRouter(mode, views.Load())

	// Backend clients
	client := storage.NewClient(storage.ClientConfig{
		BaseURL: s.config.BaseURL,
		Timeout: s.config.Timeout,
	})
	authClient := client
	if s.config.AuthBaseURL != s.config.BaseURL {
		authClient = storage.NewClient(storage.ClientConfig{
			BaseURL: s.config.AuthBaseURL,
			Timeout: s.config.Timeout,
		})
	}

	teamStorage := &storage.RestTeamStorage{Client: client}
	judgeStorage := &storage.RestJudgeStorage{Client: client, AuthClient: authClient}
	scoreStorage := &storage.RestScoreStorage{Client: client}
	finalScoreStorage := &storage.RestFinalScoreStorage{Client: client}

	sessions := &session.Manager{
		Store:      s.sessionStore(),
		Codec:      session.NewCodec(s.config.Secret),
		CookieName: s.config.CookieName,
		Secure:     s.config.SecureCookie,
	}

	//Register controllers
	loginController := controllers.NewLoginController(judgeStorage, sessions)
	loginController.RegisterRoutes(r)
	judgingController := controllers.NewJudgingController(teamStorage, scoreStorage, sessions, s.config.StaticBaseURL, s.config.TeamLimit)
	judgingController.RegisterRoutes(r)
	resultsController := controllers.NewResultsController(scoreStorage, teamStorage, s.config.StaticBaseURL, s.config.TeamLimit)
	resultsController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(finalScoreStorage, teamStorage, judgeStorage, s.config.Token, s.config.SecureCookie, s.config.TeamLimit)
	adminController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if s.config.Local {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

func (s *Server) sessionStore() session.Store {
	switch s.config.Store {
	case SessionStoreDynamo:
		cfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			logging.Log.Errorf("failed to load AWS config: %v", err)
			panic("failed to load AWS config")
		}
		logging.Log.Infof("SESSION: using dynamodb table %s", s.config.TableName)
		return &session.DynamoStore{
			Client:    dynamodb.NewFromConfig(cfg),
			TableName: s.config.TableName,
		}
	case SessionStoreRedis:
		logging.Log.Infof("SESSION: using redis at %s", s.config.RedisAddr)
		return &session.RedisStore{
			Client: redis.NewClient(&redis.Options{
				Addr:     s.config.RedisAddr,
				Password: s.config.RedisPassword,
				DB:       s.config.RedisDB,
			}),
			TTL: s.config.TTL,
		}
	case SessionStoreMemory:
	default:
		logging.Log.Warnf("SESSION: unknown session store '%s', using memory", s.config.Store)
	}
	if !s.config.Local {
		logging.Log.Warn("SESSION: memory sessions do not survive lambda cold starts")
	}
	return session.NewMemoryStore()
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
