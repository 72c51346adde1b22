package store

import (
	"time"

	"github.com/tourchain/tcs/internal/model"
)

// Seed 写入演示数据：演示用户、TourChain 项目及其回报档位，
// 外加三个展示用项目，筹款进度直接设为演示值
func Seed(s *Store) {
	user := s.CreateUser(model.User{
		Username:      "demo",
		Password:      "password123",
		Email:         "demo@example.com",
		WalletAddress: "0x7Da37534E347561BEfC711F1a0dCFcb70735F268",
	})

	tour := s.CreateCampaign(model.Campaign{
		Title:           "TourChain: Revolução nas Viagens Corporativas",
		Description:     "Ajude a construir o futuro das viagens corporativas com blockchain, bem-estar e sustentabilidade.",
		Goal:            10000000, // $100,000（分）
		Deadline:        time.Now().Add(18 * 24 * time.Hour),
		TokenSymbol:     "TOUR",
		ContractAddress: "0x7Da37534E347561BEfC711F1a0dCFcb70735F268",
		NetworkName:     "Ethereum (Sepolia Testnet)",
		CreatedBy:       user.ID,
	})

	// 演示筹款进度
	raised, backers := int64(6750000), int64(285)
	s.UpdateCampaign(tour.ID, CampaignUpdate{Raised: &raised, Backers: &backers})

	rewards := []model.Reward{
		{
			CampaignID:  tour.ID,
			Title:       "Tokens Dinâmicos",
			Description: "Compre 100 tokens por um preço que aumenta US$ 1 a cada compra. Quanto mais cedo você comprar, mais econômico será!",
			Scheme:      model.DynamicPrice{BasePrice: 100, Step: 100}, // 起始 $1，每售出一份涨 $1
			TokenAmount: model.DynamicBundleSize,
			Limit:       1000,
			Claimed:     87,
			ContractID:  "0xDYN",
		},
		{
			CampaignID:  tour.ID,
			Title:       "Acesso Antecipado",
			Description: "Seja um dos primeiros a utilizar a plataforma TourChain com acesso prioritário e suporte VIP por 3 meses.",
			Scheme:      model.FixedPrice{Amount: 25000},
			TokenAmount: 500,
			Limit:       150,
			Claimed:     87,
			ContractID:  "0x001",
		},
		{
			CampaignID:  tour.ID,
			Title:       "Pacote Corporativo",
			Description: "Licença para até 10 usuários por 6 meses, incluindo acesso a todas as funcionalidades de otimização de custos com IA.",
			Scheme:      model.FixedPrice{Amount: 100000},
			TokenAmount: 2000,
			Limit:       100,
			Claimed:     42,
			ContractID:  "0x002",
		},
		{
			CampaignID:  tour.ID,
			Title:       "Parceiro Estratégico",
			Description: "Torne-se um parceiro estratégico com acesso ilimitado por 1 ano e participe das reuniões de desenvolvimento de produto.",
			Scheme:      model.FixedPrice{Amount: 500000},
			TokenAmount: 10000,
			Limit:       25,
			Claimed:     12,
			ContractID:  "0x003",
		},
	}
	for _, r := range rewards {
		s.CreateReward(r)
	}

	extra := []struct {
		campaign model.Campaign
		raised   int64
		backers  int64
	}{
		{
			campaign: model.Campaign{
				Title:           "EcoTravel: Plataforma de Compensação de Carbono",
				Description:     "Sistema de rastreamento e compensação de carbono para viagens corporativas usando tokens verdes",
				Goal:            8000000,
				Deadline:        time.Now().Add(12 * 24 * time.Hour),
				TokenSymbol:     "ECO",
				ContractAddress: "0x8Eb24319393716668D768dCEC29356ae9CfFe285",
				NetworkName:     "Ethereum (Sepolia Testnet)",
				ImageColor:      "from-green-500 to-teal-500",
				CreatedBy:       user.ID,
			},
			raised:  4200000,
			backers: 156,
		},
		{
			campaign: model.Campaign{
				Title:           "BusinessWell: Bem-estar em Viagens",
				Description:     "Aplicativo que monitora e recompensa hábitos saudáveis durante viagens corporativas",
				Goal:            5000000,
				Deadline:        time.Now().Add(30 * 24 * time.Hour),
				TokenSymbol:     "WELL",
				ContractAddress: "0x9Fc3D676AEFf4A96EFBdBE5c5801f9a2F58DD9B3",
				NetworkName:     "Ethereum (Sepolia Testnet)",
				ImageColor:      "from-blue-500 to-cyan-500",
				CreatedBy:       user.ID,
			},
			raised:  2500000,
			backers: 118,
		},
		{
			campaign: model.Campaign{
				Title:           "CryptoHotels: Reservas com Blockchain",
				Description:     "Plataforma descentralizada para reservas de hotéis com pagamentos em criptomoedas",
				Goal:            15000000,
				Deadline:        time.Now().Add(5 * 24 * time.Hour),
				TokenSymbol:     "CHTL",
				ContractAddress: "0x2a3C8bFcAB5CfF522AB7F1D05125F8b5Ff1F8F3A",
				NetworkName:     "Ethereum (Sepolia Testnet)",
				ImageColor:      "from-purple-600 to-violet-600",
				CreatedBy:       user.ID,
			},
			raised:  12000000,
			backers: 340,
		},
	}
	for _, e := range extra {
		c := s.CreateCampaign(e.campaign)
		r, b := e.raised, e.backers
		s.UpdateCampaign(c.ID, CampaignUpdate{Raised: &r, Backers: &b})
	}
}
