package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tourchain/tcs/internal/model"
)

func newCampaign(title string) model.Campaign {
	return model.Campaign{
		Title:       title,
		Description: "desc",
		Goal:        100000,
		Deadline:    time.Now().Add(24 * time.Hour),
		TokenSymbol: "TST",
	}
}

func TestStore_IDsAreSequentialPerCollection(t *testing.T) {
	s := New()

	u1 := s.CreateUser(model.User{Username: "a"})
	u2 := s.CreateUser(model.User{Username: "b"})
	c1 := s.CreateCampaign(newCampaign("c1"))
	c2 := s.CreateCampaign(newCampaign("c2"))

	require.Equal(t, int64(1), u1.ID)
	require.Equal(t, int64(2), u2.ID)
	require.Equal(t, int64(1), c1.ID)
	require.Equal(t, int64(2), c2.ID)
}

func TestStore_RoundTrip(t *testing.T) {
	s := New()

	u := s.CreateUser(model.User{Username: "demo", Email: "demo@example.com"})
	got, ok := s.GetUser(u.ID)
	require.True(t, ok)
	require.Equal(t, u, got)

	c := s.CreateCampaign(newCampaign("round"))
	gotC, ok := s.GetCampaign(c.ID)
	require.True(t, ok)
	require.Equal(t, c, gotC)

	r := s.CreateReward(model.Reward{
		CampaignID: c.ID,
		Title:      "tier",
		Scheme:     model.FixedPrice{Amount: 5000},
		Limit:      10,
	})
	gotR, ok := s.GetReward(r.ID)
	require.True(t, ok)
	require.Equal(t, r, gotR)

	contrib, ok := s.CreateContribution(model.Contribution{CampaignID: c.ID, Amount: 5000})
	require.True(t, ok)
	gotContrib, ok := s.GetContribution(contrib.ID)
	require.True(t, ok)
	require.Equal(t, contrib, gotContrib)
	require.False(t, gotContrib.Timestamp.IsZero())
}

func TestStore_GetMissingReturnsFalse(t *testing.T) {
	s := New()

	_, ok := s.GetUser(42)
	require.False(t, ok)
	_, ok = s.GetCampaign(42)
	require.False(t, ok)
	_, ok = s.GetReward(42)
	require.False(t, ok)
	_, ok = s.GetContribution(42)
	require.False(t, ok)
}

func TestStore_ListCampaignsInsertionOrderAndLimit(t *testing.T) {
	s := New()
	for _, title := range []string{"first", "second", "third"} {
		s.CreateCampaign(newCampaign(title))
	}

	all := s.ListCampaigns(0)
	require.Len(t, all, 3)
	require.Equal(t, "first", all[0].Title)
	require.Equal(t, "second", all[1].Title)
	require.Equal(t, "third", all[2].Title)

	limited := s.ListCampaigns(2)
	require.Len(t, limited, 2)
	require.Equal(t, "first", limited[0].Title)

	require.Len(t, s.ListCampaigns(10), 3)
}

func TestStore_ListByForeignKey(t *testing.T) {
	s := New()
	c1 := s.CreateCampaign(newCampaign("c1"))
	c2 := s.CreateCampaign(newCampaign("c2"))

	s.CreateReward(model.Reward{CampaignID: c1.ID, Title: "a", Scheme: model.FixedPrice{Amount: 100}})
	s.CreateReward(model.Reward{CampaignID: c2.ID, Title: "b", Scheme: model.FixedPrice{Amount: 200}})
	s.CreateReward(model.Reward{CampaignID: c1.ID, Title: "c", Scheme: model.FixedPrice{Amount: 300}})

	rewards := s.ListRewardsByCampaign(c1.ID)
	require.Len(t, rewards, 2)
	require.Equal(t, "a", rewards[0].Title)
	require.Equal(t, "c", rewards[1].Title)

	require.Empty(t, s.ListRewardsByCampaign(999))
}

func TestStore_UpdateCampaignPartial(t *testing.T) {
	s := New()
	c := s.CreateCampaign(newCampaign("before"))

	title := "after"
	raised := int64(777)
	updated, ok := s.UpdateCampaign(c.ID, CampaignUpdate{Title: &title, Raised: &raised})
	require.True(t, ok)
	require.Equal(t, "after", updated.Title)
	require.Equal(t, int64(777), updated.Raised)
	// 未提供的字段保持不变，标识符不可变更
	require.Equal(t, c.ID, updated.ID)
	require.Equal(t, c.Description, updated.Description)

	_, ok = s.UpdateCampaign(999, CampaignUpdate{Title: &title})
	require.False(t, ok)
}

func TestStore_UpdateRewardPartial(t *testing.T) {
	s := New()
	c := s.CreateCampaign(newCampaign("c"))
	r := s.CreateReward(model.Reward{CampaignID: c.ID, Scheme: model.FixedPrice{Amount: 100}, Limit: 5})

	claimed := int64(3)
	updated, ok := s.UpdateReward(r.ID, RewardUpdate{Claimed: &claimed})
	require.True(t, ok)
	require.Equal(t, int64(3), updated.Claimed)
	require.Equal(t, int64(5), updated.Limit)

	updated, ok = s.UpdateReward(r.ID, RewardUpdate{Scheme: model.DynamicPrice{BasePrice: 1, Step: 1}})
	require.True(t, ok)
	require.True(t, updated.IsDynamic())
}

func TestStore_CreateContributionUpdatesAggregates(t *testing.T) {
	s := New()
	c := s.CreateCampaign(newCampaign("c"))
	r := s.CreateReward(model.Reward{CampaignID: c.ID, Scheme: model.FixedPrice{Amount: 5000}, Limit: 10})

	contrib, ok := s.CreateContribution(model.Contribution{
		CampaignID: c.ID,
		RewardID:   r.ID,
		Amount:     5000,
	})
	require.True(t, ok)
	require.Equal(t, int64(1), contrib.ID)

	gotC, _ := s.GetCampaign(c.ID)
	require.Equal(t, int64(5000), gotC.Raised)
	require.Equal(t, int64(1), gotC.Backers)

	gotR, _ := s.GetReward(r.ID)
	require.Equal(t, int64(1), gotR.Claimed)
}

func TestStore_CreateContributionMissingCampaignLeavesNoState(t *testing.T) {
	s := New()

	_, ok := s.CreateContribution(model.Contribution{CampaignID: 42, Amount: 100})
	require.False(t, ok)

	_, exists := s.GetContribution(1)
	require.False(t, exists)
}

func TestStore_CreateContributionMissingRewardLeavesNoState(t *testing.T) {
	s := New()
	c := s.CreateCampaign(newCampaign("c"))

	_, ok := s.CreateContribution(model.Contribution{CampaignID: c.ID, RewardID: 42, Amount: 100})
	require.False(t, ok)

	gotC, _ := s.GetCampaign(c.ID)
	require.Zero(t, gotC.Raised)
	require.Zero(t, gotC.Backers)
}

func TestStore_ListCampaignsByUser(t *testing.T) {
	s := New()
	u1 := s.CreateUser(model.User{Username: "u1"})
	u2 := s.CreateUser(model.User{Username: "u2"})

	c1 := newCampaign("c1")
	c1.CreatedBy = u1.ID
	s.CreateCampaign(c1)
	c2 := newCampaign("c2")
	c2.CreatedBy = u2.ID
	s.CreateCampaign(c2)
	c3 := newCampaign("c3")
	c3.CreatedBy = u1.ID
	s.CreateCampaign(c3)

	mine := s.ListCampaignsByUser(u1.ID)
	require.Len(t, mine, 2)
	require.Equal(t, "c1", mine[0].Title)
	require.Equal(t, "c3", mine[1].Title)

	require.Empty(t, s.ListCampaignsByUser(999))
}

func TestStore_UserLookups(t *testing.T) {
	s := New()
	s.CreateUser(model.User{Username: "alice", WalletAddress: "0xabc"})
	s.CreateUser(model.User{Username: "bob", WalletAddress: "0xdef"})

	u, ok := s.GetUserByUsername("bob")
	require.True(t, ok)
	require.Equal(t, "bob", u.Username)

	u, ok = s.GetUserByWalletAddress("0xabc")
	require.True(t, ok)
	require.Equal(t, "alice", u.Username)

	_, ok = s.GetUserByUsername("carol")
	require.False(t, ok)
}

func TestStore_ContributionListings(t *testing.T) {
	s := New()
	u := s.CreateUser(model.User{Username: "u"})
	c1 := s.CreateCampaign(newCampaign("c1"))
	c2 := s.CreateCampaign(newCampaign("c2"))

	s.CreateContribution(model.Contribution{CampaignID: c1.ID, UserID: u.ID, Amount: 100})
	s.CreateContribution(model.Contribution{CampaignID: c2.ID, Amount: 200})
	s.CreateContribution(model.Contribution{CampaignID: c1.ID, Amount: 300})

	byCampaign := s.ListContributionsByCampaign(c1.ID)
	require.Len(t, byCampaign, 2)
	require.Equal(t, int64(100), byCampaign[0].Amount)
	require.Equal(t, int64(300), byCampaign[1].Amount)

	byUser := s.ListContributionsByUser(u.ID)
	require.Len(t, byUser, 1)
	require.Equal(t, int64(100), byUser[0].Amount)
}

func TestSeed_DemoData(t *testing.T) {
	s := New()
	Seed(s)

	campaigns := s.ListCampaigns(0)
	require.Len(t, campaigns, 4)
	require.Equal(t, int64(6750000), campaigns[0].Raised)
	require.Equal(t, int64(285), campaigns[0].Backers)
	require.True(t, campaigns[0].IsActive)

	rewards := s.ListRewardsByCampaign(campaigns[0].ID)
	require.Len(t, rewards, 4)
	require.True(t, rewards[0].IsDynamic())
	require.Equal(t, int64(87), rewards[0].Claimed)
	// 动态档位当前价 = 起始价 + 每份涨幅 × 已售份数
	require.Equal(t, int64(100+100*87), rewards[0].CurrentPrice())

	_, ok := s.GetUserByUsername("demo")
	require.True(t, ok)
}
